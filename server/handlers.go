package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sig-0/policyrates/storage/file"
	"github.com/sig-0/policyrates/storage/types"
)

var (
	errUnableToFetchRates = errors.New("unable to fetch rates")
	errUnknownCountry     = errors.New("unknown country")
	errNoDataset          = errors.New("no dataset collected yet")

	errInvalidCountry = errors.New("invalid country (must not be empty)")
)

// Rates returns the latest collected dataset
func (s *Server) Rates(w http.ResponseWriter, r *http.Request) {
	records, err := s.storage.LatestDataset(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch rates",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	// No collection run yet is an empty dataset, not an error
	if records == nil {
		records = []*types.Record{}
	}

	resp := &RatesResponse{
		Results: records,
		Total:   int64(len(records)),
	}

	writeJSON(w, http.StatusOK, resp)
}

// RateForCountry returns the latest record for a single country
func (s *Server) RateForCountry(w http.ResponseWriter, r *http.Request) {
	countryParam := chi.URLParam(r, "country")

	// Parse the country identifier
	country, err := parseCountry(countryParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	records, err := s.storage.LatestDataset(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch rates",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	for _, record := range records {
		if record.Country == country {
			writeJSON(w, http.StatusOK, record)

			return
		}
	}

	writeError(w, http.StatusNotFound, errUnknownCountry)
}

// DatasetArtifact serves the JSON artifact rendered from the latest
// dataset, byte-identical to the file the collector writes
func (s *Server) DatasetArtifact(w http.ResponseWriter, r *http.Request) {
	records, err := s.storage.LatestDataset(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch rates",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	if records == nil {
		writeError(w, http.StatusNotFound, errNoDataset)

		return
	}

	payload, err := file.MarshalDataset(records)
	if err != nil {
		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(payload) //nolint:errcheck // Fine to ignore
}

// ScriptArtifact serves the JavaScript artifact rendered from the
// latest dataset
func (s *Server) ScriptArtifact(w http.ResponseWriter, r *http.Request) {
	records, err := s.storage.LatestDataset(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch rates",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	if records == nil {
		writeError(w, http.StatusNotFound, errNoDataset)

		return
	}

	payload, err := file.MarshalScript(records)
	if err != nil {
		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchRates,
		)

		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(payload) //nolint:errcheck // Fine to ignore
}

func parseCountry(v string) (types.Country, error) {
	// Route values arrive escaped when the name is non-ASCII
	if unescaped, err := url.PathUnescape(v); err == nil {
		v = unescaped
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return "", errInvalidCountry
	}

	return types.Country(v), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}

	writeJSON(w, status, resp)
}
