package main

import (
	"github.com/alekseyev/meetpoint/internal/server"
)

func main() {
	srv := server.NewServer()
	srv.Run()
}
