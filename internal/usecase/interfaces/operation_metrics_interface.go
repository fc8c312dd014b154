package interfaces

// IOperationMetrics records lifecycle outcomes and number reservation conflicts.
type IOperationMetrics interface {
	ObserveOperation(op string, outcome string)
	ObserveNumberConflict(family string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ObserveOperation(string, string) {}
func (NopMetrics) ObserveNumberConflict(string)    {}
