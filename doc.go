// Package gagiteck is the Go SDK for the Gagiteck agentic AI platform.
//
// The SDK provides two main entry points:
//
//   - [Client] is a REST client for the platform API (agents, workflows,
//     executions).
//   - [Agent] is a local agent: a named bundle of model, system prompt, and
//     tools that drives a tool-calling conversation loop against any
//     [ModelClient].
//
// # Quick Start
//
//	client, err := gagiteck.NewClient("ggt_your_key_here")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//	agents, err := client.Agents.List(ctx, gagiteck.ListParams{})
//
// Local agents run entirely in-process, talking only to a model provider:
//
//	search := gagiteck.NewTool("search", "Search the knowledge base.",
//	    func(ctx context.Context, in SearchInput) (*gagiteck.ToolResult, error) {
//	        return gagiteck.TextResult("results for " + in.Query), nil
//	    })
//	a, err := gagiteck.NewAgent("Research Assistant",
//	    gagiteck.WithModelClient(anthropic.New()),
//	    gagiteck.WithTools(search),
//	)
//	result, err := a.Run(ctx, "Find info about AI agents")
//
// # Sub-packages
//
//   - [tools] provides built-in tools (Read, Write, Glob, Bash).
//   - [session] provides SessionStore implementations (FileStore, MemoryStore).
//   - [anthropic] provides a ModelClient backed by the Anthropic API.
package gagiteck
