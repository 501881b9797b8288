package client

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
)

// FallbackListings is the static careers content shown when the backend
// cannot be reached. Job browsing never hard-fails.
var FallbackListings = []dtos.JobResponse{
	{
		Title:       "Senior AI Data Engineer",
		Location:    "Bangalore, India",
		Type:        "Full-time",
		Department:  "Engineering",
		Description: "Lead the development of precision data pipelines for global AI systems. Work with cutting-edge technology to ensure zero-error data validation.",
		Requirements: []string{
			"5+ years in data engineering",
			"Expertise in Python, SQL, and distributed systems",
			"Experience with AI/ML data workflows",
		},
	},
	{
		Title:       "Quality Assurance Specialist",
		Location:    "Remote",
		Type:        "Full-time",
		Department:  "Operations",
		Description: "Ensure exceptional quality standards across all data deliverables. Be the guardian of our commitment to zero-error datasets.",
		Requirements: []string{
			"3+ years in QA or data validation",
			"Meticulous attention to detail",
			"Understanding of AI/ML data requirements",
		},
	},
	{
		Title:       "Business Development Manager",
		Location:    "Hybrid",
		Type:        "Full-time",
		Department:  "Sales",
		Description: "Drive growth by building relationships with global AI companies. Help us expand our mission of universal machine intelligence.",
		Requirements: []string{
			"4+ years in B2B sales",
			"Experience in AI/tech industry",
			"Track record of exceeding targets",
		},
	},
}

// Jobs fetches the open roles from the backend. On a network error, a
// non-success status, or an empty list it returns the static fallback
// listings instead of an error.
func (c *Client) Jobs(ctx context.Context) []dtos.JobResponse {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/jobs", nil)
	if err != nil {
		return FallbackListings
	}
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Debug("job fetch failed, using fallback listings", zap.Error(err))
		return FallbackListings
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return FallbackListings
	}

	var jobs []dtos.JobResponse
	if err := json.NewDecoder(res.Body).Decode(&jobs); err != nil || len(jobs) == 0 {
		return FallbackListings
	}
	return jobs
}
