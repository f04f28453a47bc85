// Package observe — the observation step (C6) of the wfc solver:
// lowest-entropy cell selection and weighted collapse.
package observe
