// Package engine wires the quill registry → selector resolution → workflow
// → backend pipeline. The Engine owns process-wide state (registered quills
// and backends) behind read/write locks; each Workflow is a single-caller
// render session holding its own dynamic asset and font overlays.
package engine
