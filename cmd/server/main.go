package main

import (
	"github.com/lumenlearn/pagecraft/internal/server"
)

func main() {
	s := server.New()
	s.Start()
}
