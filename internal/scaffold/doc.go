// Package scaffold generates T3 stack monorepo projects from embedded
// templates. It powers both the create command (base project plus selected
// extensions) and the add command (retrofitting one extension onto an
// existing project), updating the project's package.json, Prisma schema,
// and message bundles through the artifact layer.
package scaffold
