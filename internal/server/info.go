package server

import (
	"github.com/conneroisu/vlistdata/internal/dataset"
	"github.com/conneroisu/vlistdata/internal/validation"
	"github.com/conneroisu/vlistdata/internal/version"
)

// Info is the body of GET /info.
type Info struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	MaxPageSize int            `json:"maxPageSize"`
	Endpoints   []EndpointInfo `json:"endpoints"`
	Params      []ParamInfo    `json:"params"`
}

// EndpointInfo documents one route.
type EndpointInfo struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Params      []string `json:"params,omitempty"`
}

// ParamInfo documents how one query parameter is clamped.
type ParamInfo struct {
	Name        string `json:"name"`
	Default     int    `json:"default"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description"`
}

func buildInfo(l validation.Limits) Info {
	param := func(name string, b validation.Bounds, unit, desc string) ParamInfo {
		return ParamInfo{Name: name, Default: b.Default, Min: b.Min, Max: b.Max, Unit: unit, Description: desc}
	}

	return Info{
		Name:        version.Name,
		Version:     version.GetVersion(),
		MaxPageSize: min(l.MaxLimit, dataset.MaxPageSize),
		Endpoints: []EndpointInfo{
			{
				Method:      "GET",
				Path:        "/users",
				Description: "Page of synthetic users",
				Params:      []string{"offset", "limit", "total", "delay"},
			},
			{
				Method:      "GET",
				Path:        "/users/{id}",
				Description: "Single synthetic user with 1-based id",
				Params:      []string{"total", "delay"},
			},
			{Method: "GET", Path: "/info", Description: "This document"},
			{Method: "GET", Path: "/health", Description: "Service health"},
		},
		Params: []ParamInfo{
			param("offset", l.OffsetBounds(), "", "Zero-based position of the first user"),
			param("limit", l.LimitBounds(), "", "Number of users per page"),
			param("total", l.TotalBounds(), "", "Size of the virtual collection"),
			param("delay", l.DelayBounds(), "ms", "Artificial latency before responding"),
		},
	}
}
