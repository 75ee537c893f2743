package scaffold

import "path/filepath"

// scaffoldAI lays down the LangChain AI agents framework: the core modules
// from the embedded template tree, the framework index, an example agent,
// and the Claude skill file.
func scaffoldAI(root string) error {
	if err := copyTemplateTree("templates/ai/core", filepath.Join(root, "src", "ai", "core")); err != nil {
		return err
	}

	files := []struct{ path, content string }{
		{"src/ai/index.ts", aiIndex},
		{"src/ai/agents/example.ts", aiExampleAgent},
		{".claude/skills/ai.md", aiClaudeSkill},
	}
	for _, f := range files {
		if err := writeFile(root, f.path, f.content); err != nil {
			return err
		}
	}
	return nil
}

const aiIndex = `// AI Framework - Re-exports from core modules
export * from "./core/providers";
export * from "./core/logging";
export * from "./core/chunking";
export * from "./core/embedding";
`

const aiExampleAgent = `import { createLLM, ModelRegistry } from "@/ai/core/providers";
import { LLMLogger } from "@/ai/core/logging";

// Initialize logging (optional)
if (process.env.LLMLOG) {
  const logger = LLMLogger.getInstance();
}

// Create LLM with Claude
const llm = createLLM({
  provider: "anthropic",
  model: ModelRegistry.anthropic.sonnet,
  temperature: 0.7,
});

export async function runAgent(input: string): Promise<string> {
  const response = await llm.invoke([
    {
      role: "system",
      content: "You are a helpful assistant.",
    },
    {
      role: "user",
      content: input,
    },
  ]);

  return response.content as string;
}
`

const aiClaudeSkill = `# AI Agents Skill

This project includes a LangChain-based AI agents framework.

## Available Modules

### Providers (` + "`src/ai/core/providers`" + `)
- Unified interface for Anthropic, OpenAI, Google, Mistral, Ollama
- Model registry with cost estimation
- Fallback chains for reliability

### Logging (` + "`src/ai/core/logging`" + `)
- LLM call logging to terminal, database, or file
- Token counting and cost tracking
- Usage statistics

### Chunking (` + "`src/ai/core/chunking`" + `)
- Text chunking strategies: character, token, semantic, recursive, markdown
- Presets for different use cases

### Embedding (` + "`src/ai/core/embedding`" + `)
- Multi-provider embedding generation
- Batch processing and semantic search

## Usage

` + "```typescript" + `
import { createLLM, LLMLogger, TextChunker, EmbeddingGenerator } from "@/ai";

const llm = createLLM({
  provider: "anthropic",
  model: "claude-sonnet-4-20250514",
  temperature: 0.7,
});

LLMLogger.getInstance().initialize({
  destinations: ["terminal"]
});

const chunker = new TextChunker({ strategy: "semantic" });
const chunks = await chunker.chunk(longText);

const embedder = new EmbeddingGenerator("openai");
const embeddings = await embedder.embed(texts);
` + "```" + `

## Environment Variables

Required for AI features:
- ` + "`ANTHROPIC_API_KEY`" + ` - For Claude models
- ` + "`OPENAI_API_KEY`" + ` - For GPT models and embeddings
`
