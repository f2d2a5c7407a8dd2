/*
Package observability provides Prometheus instrumentation for the dfa engine.

Metrics are fed through domain.LifecycleHooks, so the core stays free of any
metrics dependency: the engine fires hooks, Metrics.Hooks turns them into
counter and histogram updates.
*/
package observability
