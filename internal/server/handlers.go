package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/report"
	"github.com/storm-buster/jal-setu/internal/risk"
)

// analyzeRequest is the shared body of the AOI-aware POST endpoints.
type analyzeRequest struct {
	Region      string             `json:"region"`
	Scenario    string             `json:"scenario"`
	AOIPolygons []model.PolygonAOI `json:"aoiPolygons"`
}

// reportRequest is the body of POST /api/report.
type reportRequest struct {
	Region       string              `json:"region"`
	Scenario     string              `json:"scenario"`
	UploadedFile *model.UploadedFile `json:"uploadedFile"`
	AOIPolygons  []model.PolygonAOI  `json:"aoiPolygons"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseRegionScenario validates the caller-supplied enum values. All
// region/scenario validation happens here at the HTTP edge; the engine
// below only ever sees parsed values.
func parseRegionScenario(w http.ResponseWriter, regionStr, scenarioStr string) (model.Region, model.Scenario, bool) {
	region, err := model.ParseRegion(regionStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown region %q", regionStr))
		return "", "", false
	}
	scenario, err := model.ParseScenario(scenarioStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown scenario %q", scenarioStr))
		return "", "", false
	}
	return region, scenario, true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleLogin issues a mock session token. This is intentionally not a
// real signed JWT; clients treat its presence as an authenticated session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || len(req.Username) > 64 {
		writeError(w, http.StatusBadRequest, "username must be 1-64 characters")
		return
	}
	if req.Password == "" || len(req.Password) > 128 {
		writeError(w, http.StatusBadRequest, "password must be 1-128 characters")
		return
	}

	userID := strings.ToLower(strings.TrimSpace(req.Username))
	writeJSON(w, http.StatusOK, map[string]string{
		"token":  fmt.Sprintf("mock-jwt.%s.%d", userID, time.Now().UTC().Unix()),
		"userId": userID,
	})
}

func (s *Server) handleRiskSummary(w http.ResponseWriter, r *http.Request) {
	region, scenario, ok := parseRegionScenario(w, r.URL.Query().Get("region"), r.URL.Query().Get("scenario"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, risk.BaseSummary(region, scenario))
}

func (s *Server) handleRiskSummaryAOI(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	region, scenario, ok := parseRegionScenario(w, req.Region, req.Scenario)
	if !ok {
		return
	}

	base := risk.BaseSummary(region, scenario)
	writeJSON(w, http.StatusOK, risk.ApplyAOIScale(region, base, req.AOIPolygons))
}

func (s *Server) handleAnalyzeRegion(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	region, scenario, ok := parseRegionScenario(w, req.Region, req.Scenario)
	if !ok {
		return
	}

	base := risk.BaseSummary(region, scenario)
	scaled := risk.ApplyAOIScale(region, base, req.AOIPolygons)

	writeJSON(w, http.StatusOK, map[string]any{
		"risk":              scaled,
		"featureImportance": risk.FeatureImportances(),
		"impactComparison":  risk.ImpactComparison(region, req.AOIPolygons),
		"affectedRivers":    s.affectedRivers(region, req.AOIPolygons),
	})
}

func (s *Server) handleTerrainProfile(w http.ResponseWriter, r *http.Request) {
	region, err := model.ParseRegion(r.URL.Query().Get("region"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown region")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"region":  region,
		"profile": risk.TerrainProfile(region),
	})
}

// handleFloodZones serves the cached flood-extent FeatureCollection for a
// region and scenario, ready for map rendering.
func (s *Server) handleFloodZones(w http.ResponseWriter, r *http.Request) {
	region, scenario, ok := parseRegionScenario(w, r.URL.Query().Get("region"), r.URL.Query().Get("scenario"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.engine.FloodGeometry(region, scenario))
}

// handleIntersections reports which rivers the drawn AOI touches.
func (s *Server) handleIntersections(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	region, err := model.ParseRegion(req.Region)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown region %q", req.Region))
		return
	}

	results := s.engine.FindIntersections(region, model.Rings(req.AOIPolygons))
	writeJSON(w, http.StatusOK, map[string]any{
		"region":        region,
		"intersections": results,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	region, scenario, ok := parseRegionScenario(w, req.Region, req.Scenario)
	if !ok {
		return
	}

	base := risk.BaseSummary(region, scenario)
	scaled := risk.ApplyAOIScale(region, base, req.AOIPolygons)

	rep := s.reports.Generate(r.Context(), report.Input{
		Region:         region,
		Scenario:       scenario,
		Risk:           scaled,
		AffectedRivers: s.affectedRivers(region, req.AOIPolygons),
		Uploaded:       req.UploadedFile,
	})
	writeJSON(w, http.StatusOK, rep)
}

// affectedRivers names the rivers intersecting the drawn AOI, in
// registration order. Always non-nil for JSON friendliness.
func (s *Server) affectedRivers(region model.Region, aoi []model.PolygonAOI) []string {
	results := s.engine.FindIntersections(region, model.Rings(aoi))
	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.RiverName)
	}
	return names
}
