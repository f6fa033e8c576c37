package commands

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonOutput is the global flag for JSON output mode
var jsonOutput bool

// projectDir is the global flag for the project root
var projectDir string

// JSONResponse is the standard response wrapper for JSON output
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ResolveOutput represents the JSON output for the resolve command
type ResolveOutput struct {
	Route    string `json:"route"`
	FilePath string `json:"file_path"`
	Exists   bool   `json:"exists"`
	ViaGroup bool   `json:"via_group,omitempty"`
}

// DetectOutput represents the JSON output for the detect command
type DetectOutput struct {
	Found       bool   `json:"found"`
	Route       string `json:"route,omitempty"`
	StartOffset int    `json:"start_offset,omitempty"`
	EndOffset   int    `json:"end_offset,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
	Exists      bool   `json:"exists,omitempty"`
}

// RoutesOutput represents the JSON output for the routes command
type RoutesOutput struct {
	Routes      []RouteOutput `json:"routes"`
	TotalRoutes int           `json:"total_routes"`
}

// RouteOutput represents a single route in JSON output
type RouteOutput struct {
	Route   string   `json:"route"`
	Pattern string   `json:"pattern"`
	File    string   `json:"file"`
	Params  []string `json:"params,omitempty"`
}

// InitOutput represents the JSON output for the init command
type InitOutput struct {
	ConfigFile string `json:"config_file"`
	AppDir     string `json:"app_dir"`
}

// printJSON prints a successful JSON response to stdout
func printJSON(data any) {
	resp := JSONResponse{Success: true, Data: data}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		printJSONError(err)
		return
	}
	fmt.Println(string(out))
}

// printJSONError prints an error JSON response to stdout
func printJSONError(err error) {
	resp := JSONResponse{Success: false, Error: err.Error()}
	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Println(string(out))
}

// fail reports an error in the active output mode and exits.
func fail(err error) {
	if jsonOutput {
		printJSONError(err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
