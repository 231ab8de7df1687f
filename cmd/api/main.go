package main

// @title       MUN Coordinator API
// @description Real-time session coordinator for Model United Nations delegates: websocket chat, specialist task scheduling and session queries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	Execute()
}
