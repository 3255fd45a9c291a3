package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           BetDiary API
// @version         0.1.0
// @description     Sports-betting trading journal: matches, operations, bankroll and performance reports.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
