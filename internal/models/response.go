package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single-entry response payload
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ListData wraps a list response payload
type ListData struct {
	List interface{} `json:"list"`
}

// ResponseCurrentTime returns the current time in milliseconds for response envelopes
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewEntryResponse creates a successful single-entry ResponseModel
func NewEntryResponse(entry interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        EntryData{Entry: entry},
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse creates a successful list ResponseModel
func NewListResponse(list interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        ListData{List: list},
		Text:        "OK",
		Version:     2,
	}
}
