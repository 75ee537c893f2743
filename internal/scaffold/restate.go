package scaffold

import "path/filepath"

// scaffoldRestate lays down the Restate durable workflow services tree
// (docker-compose infrastructure plus the services package) and its README.
// Restate ships as a separate package, so nothing is merged into the root
// dependency manifest.
func scaffoldRestate(root string) error {
	if err := copyTemplateTree("templates/restate", filepath.Join(root, "restate")); err != nil {
		return err
	}
	return writeFile(root, "restate/README.md", restateReadme)
}

const restateReadme = `# Restate Durable Workflows

This project includes Restate for building durable, fault-tolerant workflows.

## Quick Start

` + "```bash" + `
# Start infrastructure (Restate, Ollama, Docling, PostgreSQL)
docker-compose up -d

# Install dependencies
cd services && npm install

# Start services
npm run dev

# Register with Restate
curl -X POST http://localhost:9070/deployments \
  -H 'content-type: application/json' \
  -d '{"uri": "http://host.docker.internal:9082"}'
` + "```" + `

## Available Services

### Embedding Service (port 9082)
Generate text embeddings using Ollama:
` + "```bash" + `
curl -X POST http://localhost:8080/EmbeddingService/embed \
  -H 'content-type: application/json' \
  -d '{"text": "Hello, world!"}'
` + "```" + `

### Extraction Service (port 9082)
Extract content from documents (PDF, DOCX, PPTX):
` + "```bash" + `
curl -X POST http://localhost:8080/ExtractionService/extract \
  -H 'content-type: application/json' \
  -d '{"url": "https://example.com/document.pdf", "outputFormat": "markdown"}'
` + "```" + `

## Environment Variables

Copy ` + "`.env.example`" + ` to ` + "`.env`" + ` and configure:

` + "```bash" + `
# Restate
PORT=9082

# Ollama
OLLAMA_ENDPOINT=http://localhost:11434

# Docling
DOCLING_ENDPOINT=http://localhost:5000

# AWS (optional)
AWS_REGION=us-east-1
AWS_ACCESS_KEY_ID=
AWS_SECRET_ACCESS_KEY=
AWS_S3_BUCKET_NAME=
` + "```" + `

## Documentation

- [Restate Docs](https://docs.restate.dev/) - Official Restate documentation
`
