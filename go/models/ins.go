package models

// Ins is a decoded instruction as the listing code sees it. Both borrowed
// engine views and owned copies satisfy it.
type Ins interface {
	Addr() uint64
	Bytes() []byte
	Mnemonic() string
	OpStr() string
}
