// Package context contains the application context shared by the app and cli
// packages. It is separate to avoid a circular import between them.
package context
