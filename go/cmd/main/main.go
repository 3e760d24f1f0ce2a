package main

import (
	"github.com/lunixbochs/safecs/go/cmd"

	_ "github.com/lunixbochs/safecs/go/cmd/dis"
	_ "github.com/lunixbochs/safecs/go/cmd/info"
	_ "github.com/lunixbochs/safecs/go/cmd/repl"
	_ "github.com/lunixbochs/safecs/go/cmd/walk"
)

func main() { cmd.Main() }
