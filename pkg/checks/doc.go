// Package checks holds every health check dotdoctor can plan. Each check
// normalizes what it observed into a types.CheckOutcome; errors never
// escape a check.
package checks
