package cs

// noCopy makes go vet's copylocks check flag struct copies of handle owners.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
