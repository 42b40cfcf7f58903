// Package tools provides the registry, schema derivation and dispatch for tools exposed to LLM function-calling APIs. Tools are registered once at startup, advertised to the model as JSON schemas, and invoked by name with serialized arguments.
package tools
