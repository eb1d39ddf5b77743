package tools

import (
	gagiteck "github.com/gagiteck/gagiteck-go"
)

// All returns handles for every built-in tool, ready to pass to
// gagiteck.WithTools.
func All() []gagiteck.ToolHandle {
	return []gagiteck.ToolHandle{
		gagiteck.HandleTool[ReadInput](&ReadTool{}),
		gagiteck.HandleTool[WriteInput](&WriteTool{}),
		gagiteck.HandleTool[GlobInput](&GlobTool{}),
		gagiteck.HandleTool[BashInput](&BashTool{}),
	}
}

// RegisterAll registers all built-in tools into the provided registry.
func RegisterAll(registry *gagiteck.ToolRegistry) error {
	for _, h := range All() {
		if err := registry.Register(h); err != nil {
			return err
		}
	}
	return nil
}
