// Package acl implements the Anti-Corruption Layer pattern for external
// services. ACL adapters translate between external API models and domain
// models, protecting the domain from external system changes.
//
// The single adapter in this service is UrbanDictionaryClient, which consumes
// the Urban Dictionary API behind RapidAPI. It owns the external DTO shapes,
// the credential gate (requests are refused while the configured API key is
// the placeholder value), and the translation of external entries into
// domain.Definition values with permissive defaults.
//
// Supporting tooling in this package:
//
//   - BaseAdapter: common request execution with domain error mapping
//   - MapHTTPError: HTTP status and client errors to domain errors
//   - DecodeResponse / TranslateSlice: generic decode-and-translate helpers
//
// Nothing outside this package ever sees an external DTO or an HTTP status
// code; callers work exclusively with domain types and domain errors.
package acl
