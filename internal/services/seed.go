package services

import (
	"time"

	"mockadmin/internal/models"
)

// Seed datasets returned whenever a collection blob is absent or unreadable.
// Each call yields a fresh copy with current timestamps.

func SeedUsers() []models.User {
	now := time.Now().UTC()
	return []models.User{
		{ID: 1, Username: "admin", Active: true, CreatedAt: now},
		{ID: 2, Username: "usuario1", Active: true, CreatedAt: now},
		{ID: 3, Username: "usuario2", Active: false, CreatedAt: now},
	}
}

func SeedTasks() []models.Task {
	return []models.Task{
		{ID: 1, Name: "Configurar entorno React", Done: false},
		{ID: 2, Name: "Crear layout con Header y Footer", Done: true},
		{ID: 3, Name: "Implementar CRUD de usuarios", Done: false},
	}
}
