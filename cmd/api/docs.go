package main

// @title Počasí API
// @version 1.0
// @description Hourly Open-Meteo forecast for a single configured location, served as an HTML page and as JSON.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
// @schemes http
