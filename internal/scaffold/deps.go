package scaffold

// Dependency fragments merged into generated package.json files. Versions
// already present in a project are never overwritten (keep-existing merge).

var baseDependencies = map[string]string{
	"next":                  "^16.1.1",
	"react":                 "^19.0.0",
	"react-dom":             "^19.0.0",
	"@prisma/client":        "^7.2.0",
	"@prisma/adapter-pg":    "^7.2.0",
	"@trpc/client":          "^11.0.0",
	"@trpc/server":          "^11.0.0",
	"@trpc/react-query":     "^11.0.0",
	"@tanstack/react-query": "^5.69.0",
	"@t3-oss/env-nextjs":    "^0.13.10",
	"next-themes":           "^0.4.6",
	"next-intl":             "^4.0.2",
	"superjson":             "^2.2.1",
	"zod":                   "^4.3.5",
	"server-only":           "^0.0.1",
	"lucide-react":          "^0.562.0",
}

var baseDevDependencies = map[string]string{
	"typescript":                  "^5.8.2",
	"@types/node":                 "^25.0.8",
	"@types/react":                "^19.0.0",
	"@types/react-dom":            "^19.0.0",
	"prisma":                      "^7.2.0",
	"tailwindcss":                 "^4.0.15",
	"@tailwindcss/postcss":        "^4.0.15",
	"postcss":                     "^8.5.3",
	"eslint":                      "^9.23.0",
	"eslint-config-next":          "^16.1.1",
	"@eslint/eslintrc":            "^3.3.1",
	"typescript-eslint":           "^8.27.0",
	"prettier":                    "^3.5.3",
	"prettier-plugin-tailwindcss": "^0.7.2",
	"vitest":                      "4.0.17",
	"@vitejs/plugin-react":        "5.1.2",
	"@testing-library/react":      "^16.3.0",
	"@testing-library/dom":        "^10.4.0",
	"@testing-library/jest-dom":   "^6.6.3",
	"jsdom":                       "27.4.0",
}

var baseScripts = map[string]string{
	"dev":         "next dev --turbopack",
	"build":       "next build",
	"start":       "next start",
	"lint":        "next lint",
	"db:push":     "prisma db push",
	"db:studio":   "prisma studio",
	"db:generate": "prisma generate",
	"test":        "vitest",
	"format":      "prettier --write .",
}

var betterAuthDependencies = map[string]string{
	"better-auth": "^1.0.0",
}

var nextAuthDependencies = map[string]string{
	"next-auth":            "4.24.13",
	"@auth/prisma-adapter": "^2.7.2",
}

var aiDependencies = map[string]string{
	"@langchain/anthropic": "^1.3.18",
	"@langchain/core":      "^1.1.26",
	"@langchain/openai":    "^1.2.8",
	"langchain":            "^1.2.25",
	"zod":                  "^4.3.6",
	"winston":              "^3.19.0",
	"pg":                   "^8.18.0",
}

var uiDependencies = map[string]string{
	"@floating-ui/react":       "^0.27.18",
	"class-variance-authority": "^0.7.1",
	"clsx":                     "^2.1.1",
	"date-fns":                 "^4.1.0",
	"lucide-react":             "^0.574.0",
	"react-day-picker":         "^9.13.2",
	"recharts":                 "^2.15.4",
	"sonner":                   "^2.0.7",
	"tailwind-merge":           "^3.4.1",
	"next-themes":              "^0.4.6",
}

var cmdDependencies = map[string]string{
	// LangChain
	"@langchain/anthropic":     "^1.3.18",
	"@langchain/cohere":        "^1.0.2",
	"@langchain/core":          "^1.1.26",
	"@langchain/google-genai":  "^2.1.19",
	"@langchain/mistralai":     "^1.0.4",
	"@langchain/ollama":        "^1.2.3",
	"@langchain/openai":        "^1.2.8",
	"@langchain/textsplitters": "^1.0.1",
	"langchain":                "^1.2.25",
	// Backend
	"@anthropic-ai/sdk": "^0.39.0",
	"winston":           "^3.19.0",
	"pg":                "^8.18.0",
	"server-only":       "^0.0.1",
	// Frontend
	"react-markdown":           "^10.1.0",
	"remark-gfm":               "^4.0.1",
	"@floating-ui/react":       "^0.27.18",
	"sonner":                   "^2.0.7",
	"class-variance-authority": "^0.7.1",
	"date-fns":                 "^4.1.0",
	// DocGen
	"pdfmake":   "^0.3.4",
	"exceljs":   "^4.4.0",
	"pptxgenjs": "^4.0.1",
	// AWS
	"@aws-sdk/client-s3":            "^3.993.0",
	"@aws-sdk/s3-request-presigner": "^3.993.0",
}

var cmdDevDependencies = map[string]string{
	"@types/pdfmake": "^0.3.1",
	"@types/pg":      "^8.16.0",
}

// dependencyFragments returns the runtime and development dependency
// fragments for an extension. Restate workflows live in their own services
// package and contribute nothing to the root manifest.
func dependencyFragments(ext Extension) (deps, devDeps map[string]string) {
	switch ext {
	case ExtAI:
		return aiDependencies, nil
	case ExtUI:
		return uiDependencies, nil
	case ExtCmd:
		return cmdDependencies, cmdDevDependencies
	default:
		return nil, nil
	}
}

// authDependencies returns the dependency fragment for an auth provider.
func authDependencies(provider AuthProvider) map[string]string {
	if provider == NextAuth {
		return nextAuthDependencies
	}
	return betterAuthDependencies
}
