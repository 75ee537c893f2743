// Package artifact implements additive merging of generated-artifact fragments.
// The scaffolder creates three kinds of artifacts it later extends: the
// package.json dependency manifest, the per-locale message bundles, and the
// Prisma schema. All three go through this package so the merge policy is
// explicit and testable instead of being re-implemented at every call site.
package artifact
