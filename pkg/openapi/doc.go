// Package openapi derives class parameter data from the component schemas of
// an OpenAPI 3 document, so API payloads can be documented with the same
// parameters directive as hand-written data files. kin-openapi stays behind
// this package; callers only see paramdata types.
package openapi
