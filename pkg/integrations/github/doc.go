// Package github provides a client for the GitHub Licenses API.
//
// The Licenses API serves the taxonomy used to classify dependency
// licenses: each license record carries its permissions, conditions, and
// limitations. [Client.FetchLicenses] downloads the full set, and
// [Client.FetchRepoLicense] looks up the detected license of a single
// repository.
//
// Unauthenticated requests are rate limited to 60 per hour, which is
// enough for a taxonomy fetch. Pass a token to NewClient for higher
// limits in CI environments.
package github
