// Package worker provides a worker pool for validating many fee
// documents concurrently, such as the documents of a full feed export.
package worker
