package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"anion-gap.json", "anion-gap"},
		{"anion-gap", "anion-gap"},
		{"ckd-epi-creatinine.json", "ckd-epi-creatinine"},
		{"", ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/api/calc/formula/"+tc.raw, nil)
		params := httprouter.Params{{Key: "id", Value: tc.raw}}
		ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
		req = req.WithContext(ctx)

		assert.Equal(t, tc.expected, ExtractIDFromParams(req))
	}
}

func TestExtractIDFromParamsWithoutParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/calc/formulas.json", nil)
	assert.Equal(t, "", ExtractIDFromParams(req))
}
