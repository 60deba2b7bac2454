// Package tools holds the built-in tool implementations.
package tools

import (
	"context"
	"os"

	"github.com/spf13/cast"

	"github.com/sunshine-JLU/nanobot/internal/conf"
	"github.com/sunshine-JLU/nanobot/internal/probe"
	"github.com/sunshine-JLU/nanobot/internal/sysinfo"
	"github.com/sunshine-JLU/nanobot/internal/tool"
)

// SystemInfoTool reports OS, CPU, memory and disk facts as text
type SystemInfoTool struct {
	provider probe.Provider
}

var _ tool.Tool = (*SystemInfoTool)(nil)

// NewSystemInfoTool returns a tool backed by the platform's fact provider
func NewSystemInfoTool() *SystemInfoTool {
	return &SystemInfoTool{provider: probe.Default()}
}

func (t *SystemInfoTool) Name() string {
	return "system_info"
}

func (t *SystemInfoTool) Description() string {
	return "Get system information including OS, CPU, memory, and disk usage."
}

func (t *SystemInfoTool) Parameters() tool.Schema {
	return tool.Schema{
		Type: "object",
		Properties: map[string]tool.Property{
			"info_type": {
				Type:        "string",
				Enum:        sysinfo.Categories,
				Description: "Type of information to retrieve. 'all' returns everything.",
			},
		},
		Required: []string{},
	}
}

// Execute renders the requested report. Unknown extra arguments are
// ignored and every failure path ends in the returned text: the error
// result is always nil.
func (t *SystemInfoTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	infoType := "all"
	if v, ok := args["info_type"]; ok && v != nil {
		infoType = cast.ToString(v)
	}

	path := conf.GetDiskPath()
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "Error getting system info: " + err.Error(), nil
		}
		path = cwd
	}

	return sysinfo.Render(infoType, t.provider, path), nil
}
