// Package branding centralizes product naming used across services.
package branding

// AppName is the user-facing product name.
const AppName = "Mascotforge"
