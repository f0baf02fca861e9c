package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
)

type failureEnvelope struct {
	Status  bool              `json:"status"`
	ErrNo   int               `json:"errNo"`
	ErrMsg  string            `json:"errMsg"`
	Details map[string]string `json:"details"`
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var envelope struct {
		Status bool              `json:"status"`
		Data   map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !envelope.Status || envelope.Data["hello"] != "world" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestWriteErrorMapsCodeMetadata(t *testing.T) {
	cases := []struct {
		code       pkgerrors.Code
		wantStatus int
		wantErrNo  int
	}{
		{pkgerrors.CodeValidation, http.StatusPreconditionFailed, 1412},
		{pkgerrors.CodeInvalidInput, http.StatusBadRequest, 1400},
		{pkgerrors.CodeNotFound, http.StatusNotFound, 1404},
		{pkgerrors.CodeNoMatchingTier, http.StatusNotFound, 1405},
		{pkgerrors.CodeConflict, http.StatusConflict, 1409},
		{pkgerrors.CodeInconsistentConfig, http.StatusInternalServerError, 1500},
		{pkgerrors.CodeInternal, http.StatusInternalServerError, 1501},
		{pkgerrors.CodeDependency, http.StatusInternalServerError, 1503},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, pkgerrors.New(tc.code, "boom"))

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			var envelope failureEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if envelope.Status {
				t.Fatal("expected status false")
			}
			if envelope.ErrNo != tc.wantErrNo {
				t.Fatalf("expected errNo %d, got %d", tc.wantErrNo, envelope.ErrNo)
			}
		})
	}
}

func TestWriteErrorExposesClientMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeNotFound, "tier not found"))

	var envelope failureEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.ErrMsg != "tier not found" {
		t.Fatalf("expected the typed message, got %q", envelope.ErrMsg)
	}
}

func TestWriteErrorHidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeInternal, "pq: connection refused"))

	var envelope failureEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.ErrMsg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", envelope.ErrMsg)
	}
}

func TestWriteErrorUntypedDefaultsToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("spontaneous failure"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var envelope failureEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.ErrNo != 1501 {
		t.Fatalf("expected errNo 1501, got %d", envelope.ErrNo)
	}
}

func TestWriteErrorIncludesAllowedDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "tier validation failed").
		WithDetails(map[string]string{"min_amount": "is required"})
	WriteError(context.Background(), nil, rec, err)

	var envelope failureEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.Details["min_amount"] != "is required" {
		t.Fatalf("expected field details, got %+v", envelope.Details)
	}
}
