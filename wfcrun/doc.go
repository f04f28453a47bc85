// Package wfcrun wires catalogue, wave, propagate, and entropy together
// into a driveable solve: Run.Step performs one observe-then-propagate
// cycle, Run.StepAll drives to completion or contradiction, and
// CollapseRetrying restarts across independent attempts on
// contradiction, optionally in parallel.
package wfcrun
