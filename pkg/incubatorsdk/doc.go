// Package incubatorsdk is a typed HTTP client for the Idea Incubator service.
//
// Unauthenticated operations (Register, Login, Livez, Readyz) live on
// SDKClient. Login returns a Session carrying the signed session cookie, and
// every authenticated operation lives on Session.
//
// Usage:
//
//	client := incubatorsdk.NewSDKClient("http://localhost:8080")
//	_, err := client.Register(ctx, "alice", "alice@example.com", "s3cret")
//	session, err := client.Login(ctx, "alice", "s3cret")
//	projects, err := session.ListProjects(ctx)
package incubatorsdk
