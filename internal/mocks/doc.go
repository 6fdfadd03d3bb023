/*
Package mocks will have all the mocks of the application.
*/
package mocks // import "github.com/slok/billingmetrics/internal/mocks"

// Service mocks.
//go:generate mockery -output ./service/metric -outpkg metric -dir ../service/metric -name Gatherer
//go:generate mockery -output ./service/metrics -outpkg metrics -dir ../service/metrics -name Recorder
//go:generate mockery -output ./service/output -outpkg output -dir ../service/output -name Emitter
//go:generate mockery -output ./service/metric/cloudwatch -outpkg cloudwatch -dir ../service/metric/cloudwatch -name CloudWatchAPI
