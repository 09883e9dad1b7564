package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prateek/career-navigator/internal/analytics"
	"github.com/prateek/career-navigator/internal/pipeline"
)

const serviceName = "career-growth-navigator"

// Request defaults applied when the caller omits the optional fields
const (
	defaultHoursPerWeek = 10
	defaultLocation     = "India"
)

// AnalyzeRequest is the body for POST /api/career/analyze
type AnalyzeRequest struct {
	CurrentRole       string `json:"currentRole" validate:"required"`
	TargetRole        string `json:"targetRole" validate:"required"`
	AdditionalContext string `json:"additionalContext"`
	HoursPerWeek      int    `json:"hoursPerWeek" validate:"omitempty,gt=0"`
	Location          string `json:"location"`
}

// trim normalizes the role fields so whitespace-only values fail the
// required check instead of reaching the pipeline
func (r *AnalyzeRequest) trim() {
	r.CurrentRole = strings.TrimSpace(r.CurrentRole)
	r.TargetRole = strings.TrimSpace(r.TargetRole)
	r.AdditionalContext = strings.TrimSpace(r.AdditionalContext)
	r.Location = strings.TrimSpace(r.Location)
}

// CoursesRequest is the body for POST /api/career/courses
type CoursesRequest struct {
	Skills          []string `json:"skills" validate:"required,min=1"`
	ExperienceLevel string   `json:"experienceLevel"`
}

// courseDocument is the wire form of a retrieved course
type courseDocument struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// courseSearchK bounds the standalone course-search endpoint
const courseSearchK = 10

// newValidator builds the request validator, reporting JSON field names in
// violation messages rather than Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// handleAnalyze runs the full career analysis pipeline
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, errorBody{
			Error:    "invalid JSON body",
			Category: categoryValidation,
			Details:  err.Error(),
		})
		return
	}

	req.trim()
	if err := s.validate.Struct(req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, errorBody{
			Error:    "validation failed",
			Category: categoryValidation,
			Details:  validationDetails(err),
		})
		return
	}

	if req.HoursPerWeek == 0 {
		req.HoursPerWeek = defaultHoursPerWeek
	}
	if req.Location == "" {
		req.Location = defaultLocation
	}

	plan, err := s.pipeline.Run(r.Context(), pipeline.Request{
		CurrentRole:       req.CurrentRole,
		TargetRole:        req.TargetRole,
		AdditionalContext: req.AdditionalContext,
		HoursPerWeek:      req.HoursPerWeek,
		Location:          req.Location,
	})
	if err != nil {
		status, category := classify(err)
		s.logger.Error("analyze failed",
			zap.String("current_role", req.CurrentRole),
			zap.String("target_role", req.TargetRole),
			zap.Error(err))
		s.jsonResponse(w, status, errorBody{
			Error:    "career analysis failed",
			Category: category,
			Details:  err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, plan)
}

// handleCourses searches the course corpus directly, without running the
// pipeline. Returns raw retrieved documents.
func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	var req CoursesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, errorBody{
			Error:    "invalid JSON body",
			Category: categoryValidation,
			Details:  err.Error(),
		})
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, errorBody{
			Error:    "validation failed",
			Category: categoryValidation,
			Details:  validationDetails(err),
		})
		return
	}

	docs, err := s.stores.Courses.Query(r.Context(), strings.Join(req.Skills, ", "), courseSearchK)
	if err != nil {
		status, category := classify(err)
		s.logger.Error("course search failed", zap.Strings("skills", req.Skills), zap.Error(err))
		s.jsonResponse(w, status, errorBody{
			Error:    "course search failed",
			Category: category,
			Details:  err.Error(),
		})
		return
	}

	results := make([]courseDocument, len(docs))
	for i, doc := range docs {
		results[i] = courseDocument{Content: doc.Content, Metadata: doc.Metadata}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills":  req.Skills,
		"courses": results,
	})
}

// handleSalary returns the salary insight for a role and optional location
func (s *Server) handleSalary(w http.ResponseWriter, r *http.Request) {
	role := r.PathValue("role")
	location := r.URL.Query().Get("location")
	if location == "" {
		location = defaultLocation
	}

	s.jsonResponse(w, http.StatusOK, s.salaries.Lookup(role, location))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

// handleAnalytics returns the usage summary
func (s *Server) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, analytics.Summarize(s.analyticsPath))
}

// handleRoot returns the service banner with the endpoint list
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": serviceName,
		"status":  "running",
		"endpoints": map[string]string{
			"analyze":   "POST /api/career/analyze",
			"courses":   "POST /api/career/courses",
			"salary":    "GET /api/career/salary/{role}",
			"health":    "GET /api/career/health",
			"analytics": "GET /api/career/analytics",
		},
	})
}

// validationDetails names the offending fields from a validator error
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required", "min":
			parts[i] = fmt.Sprintf("%s is required", fe.Field())
		default:
			parts[i] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return strings.Join(parts, "; ")
}
