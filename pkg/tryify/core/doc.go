// Package core contains channel plumbing for running wrapped callables over
// many inputs: slice/channel helpers, worker configuration via context, and
// the locomotive loop that drives one worker. It holds no adapter logic; mass
// builds on it.
package core
