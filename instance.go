package bindkit

// instanceResolver yields a producer returning a pre-built instance.
// Instances have singleton semantics regardless of the registered lifetime.
type instanceResolver struct {
	instance any
}

func (r *instanceResolver) resolve(*resolutionContext) (producer, error) {
	return instanceProducer(r.instance), nil
}
