package middleware

import "github.com/rinasm/journeymap/pkg/ports"

// Middleware allows wrapping a JourneyStore to add behavior.
type Middleware func(ports.JourneyStore) ports.JourneyStore
