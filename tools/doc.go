// Package tools provides built-in tools for local agents: Read, Write,
// Glob, and Bash. Register them individually or via [RegisterAll].
package tools
