package scaffold

import (
	"path/filepath"

	"github.com/t3mono-labs/t3mono/internal/artifact"
)

// scaffoldCmd lays down the CommandIsland AI layer: chat, AI tables, AI
// docs, and the split-view panel system. Beyond copying template trees it
// rewires the tRPC setup for auth, patches the Prisma schema for pgvector
// and the new models, and merges the layer's message namespaces into each
// locale bundle.
func scaffoldCmd(root string) error {
	trees := []struct{ prefix, dest string }{
		{"templates/cmd/components", filepath.Join(root, "src", "components")},
		{"templates/cmd/lib", filepath.Join(root, "src", "lib")},
		{"templates/cmd/server", filepath.Join(root, "src", "server")},
	}
	for _, t := range trees {
		if err := copyTemplateTree(t.prefix, t.dest); err != nil {
			return err
		}
	}

	files := []struct{ path, content string }{
		// Auth-aware tRPC replaces the base setup.
		{"src/server/api/trpc.ts", cmdTRPCInit},
		{"src/server/api/root.ts", cmdTRPCRoot},
		{"src/app/_components/CommandIslandLayout.tsx", cmdLayoutWrapper},
		{"src/app/layout.tsx", cmdAppLayout},
		{"src/components/layout/PageGuide.tsx", cmdPageGuideStub},
		{".claude/skills/commandisland.md", cmdClaudeSkill},
	}
	for _, f := range files {
		if err := writeFile(root, f.path, f.content); err != nil {
			return err
		}
	}

	if err := patchCmdSchema(root); err != nil {
		return err
	}

	for locale, fragment := range map[string]string{
		"en": cmdMessagesEN,
		"de": cmdMessagesDE,
	} {
		path := filepath.Join(root, "messages", locale+".json")
		if err := artifact.MergeBundleFile(path, []byte(fragment)); err != nil {
			return err
		}
	}

	return nil
}

// patchCmdSchema prepares the Prisma schema for the CommandIsland models:
// enables the pgvector preview feature, wires the vector extension into the
// datasource, adds the session back-references to User, and appends the new
// models and enums. Each edit fails loudly if the block it targets is
// missing.
func patchCmdSchema(root string) error {
	schemaPath := filepath.Join(root, "prisma", "schema.prisma")
	schema, err := artifact.LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	if err := schema.SetProperty("generator", "client", "previewFeatures", `["postgresqlExtensions"]`); err != nil {
		return err
	}
	if err := schema.SetProperty("datasource", "db", "extensions", "[vector]"); err != nil {
		return err
	}

	if err := schema.AppendToModel("User", []string{
		"chatThreads     ChatThread[]",
		"aiTableSessions AITableSession[]",
		"aiDocSessions   AIDocSession[]",
	}); err != nil {
		return err
	}

	if _, err := schema.AddBlocks(cmdPrismaModels); err != nil {
		return err
	}

	return schema.Save(schemaPath)
}

const cmdTRPCInit = `import { initTRPC, TRPCError } from "@trpc/server";
import superjson from "superjson";
import { ZodError } from "zod";
import { db } from "@/server/db";
import { auth } from "@/server/auth";
import { headers } from "next/headers";

export const createTRPCContext = async (opts: { headers: Headers }) => {
  const session = await auth.api.getSession({
    headers: await headers(),
  });

  return {
    db,
    session,
    userId: session?.user?.id,
    ...opts,
  };
};

const t = initTRPC.context<typeof createTRPCContext>().create({
  transformer: superjson,
  errorFormatter({ shape, error }) {
    return {
      ...shape,
      data: {
        ...shape.data,
        zodError:
          error.cause instanceof ZodError ? error.cause.flatten() : null,
      },
    };
  },
});

export const createCallerFactory = t.createCallerFactory;
export const createTRPCRouter = t.router;
export const publicProcedure = t.procedure;

const enforceAuth = t.middleware(({ ctx, next }) => {
  if (!ctx.session?.user?.id) {
    throw new TRPCError({ code: "UNAUTHORIZED" });
  }
  return next({
    ctx: {
      session: ctx.session,
      userId: ctx.session.user.id,
    },
  });
});

export const protectedProcedure = t.procedure.use(enforceAuth);
`

const cmdTRPCRoot = `import { createCallerFactory, createTRPCRouter } from "@/server/api/trpc";
import { chatRouter } from "@/server/api/routers/chat";
import { tablesRouter } from "@/server/api/routers/tables";
import { docsRouter } from "@/server/api/routers/docs";

export const appRouter = createTRPCRouter({
  chat: chatRouter,
  tables: tablesRouter,
  docs: docsRouter,
});

export type AppRouter = typeof appRouter;
export const createCaller = createCallerFactory(appRouter);
`

const cmdPrismaModels = `
// ============================================================================
// CommandIsland AI Models
// ============================================================================

enum ProcessingStatus {
  PENDING
  IN_PROGRESS
  COMPLETED
  FAILED
}

enum ChunkType {
  TEXT
  TABLE
  HEADER
  FORM_FIELD
  LIST
  IMAGE_DESCRIPTION
}

model ChatThread {
  id           String       @id @default(cuid())
  title        String?
  submissionId String?
  userId       String
  user         User         @relation(fields: [userId], references: [id], onDelete: Cascade)
  messages     ChatMessage[]
  attachments  ChatAttachment[]
  createdAt    DateTime     @default(now())
  updatedAt    DateTime     @updatedAt

  @@index([userId])
  @@index([submissionId])
}

model ChatMessage {
  id        String     @id @default(cuid())
  role      String
  content   String
  metadata  Json?
  threadId  String
  thread    ChatThread @relation(fields: [threadId], references: [id], onDelete: Cascade)
  createdAt DateTime   @default(now())

  @@index([threadId])
}

model ChatAttachment {
  id               String           @id @default(cuid())
  filename         String
  mimeType         String
  s3Key            String
  fileSize         Int?
  extractedContent String?
  processingStatus ProcessingStatus @default(PENDING)
  error            String?

  threadId String
  thread   ChatThread @relation(fields: [threadId], references: [id], onDelete: Cascade)

  chunks ChatAttachmentChunk[]

  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt

  @@index([threadId])
}

model ChatAttachmentChunk {
  id         String    @id @default(cuid())
  content    String
  chunkIndex Int
  chunkType  ChunkType @default(TEXT)
  embedding  Unsupported("vector(1024)")?

  attachmentId String
  attachment   ChatAttachment @relation(fields: [attachmentId], references: [id], onDelete: Cascade)

  createdAt DateTime @default(now())

  @@index([attachmentId])
}

model AITableSession {
  id           String     @id @default(cuid())
  submissionId String
  messageId    String?
  useCase      Json
  columns      Json
  results      Json       @default("{}")
  userId       String
  user         User       @relation(fields: [userId], references: [id], onDelete: Cascade)
  createdAt    DateTime   @default(now())
  updatedAt    DateTime   @updatedAt

  @@index([submissionId])
  @@index([userId])
  @@index([messageId])
}

model AIDocSession {
  id           String     @id @default(cuid())
  submissionId String
  messageId    String?
  template     Json
  sections     Json
  fileType     String
  status       String     @default("pending")
  s3Key        String?
  filename     String?
  userId       String
  user         User       @relation(fields: [userId], references: [id], onDelete: Cascade)
  createdAt    DateTime   @default(now())
  updatedAt    DateTime   @updatedAt

  @@index([submissionId])
  @@index([userId])
  @@index([messageId])
}
`

const cmdMessagesEN = `{
  "commandIsland": {
    "queryMode": "Filter",
    "aiMode": "AI Assistant",
    "clearQuery": "Clear filter",
    "defaultPlaceholder": "Type to filter...",
    "aiPlaceholder": "Ask about this submission...",
    "attach": "Attach file",
    "send": "Send",
    "toggleChat": "Toggle chat",
    "unsupportedFileType": "Unsupported file type. Accepted: PDF, Word, Excel, PowerPoint, text, images.",
    "fileTooLarge": "File too large. Maximum 50 MB.",
    "removeAttachment": "Remove",
    "tablesMode": "AI Tables",
    "tablesPlaceholder": "Describe what to analyze across documents...",
    "docsMode": "AI Docs",
    "docsPlaceholder": "Describe what document to generate...",
    "aiSuggestions": "AI Suggestions",
    "suggestSummarize": "Summarize submission",
    "suggestCompliance": "Compliance check",
    "suggestFindings": "List findings",
    "suggestCrossRef": "Cross-reference",
    "suggestRisks": "Quality risks",
    "suggestExtractData": "Extract data"
  },
  "tables": {
    "document": "Document",
    "runAll": "Run All",
    "addColumn": "Add Column",
    "export": "Export CSV",
    "runColumn": "Run Column",
    "removeColumn": "Remove",
    "columnConfig": "Configure column",
    "modelSelector": "Model",
    "outputFormat": "Output Format",
    "agentDescription": "Agent Prompt",
    "save": "Save",
    "selectUseCase": "Select a use case",
    "cellsComplete": "{count} of {total} cells complete",
    "noSubmission": "No submission selected",
    "answer": "Answer",
    "explanation": "Explanation",
    "sourceReference": "Source Reference",
    "selectAgent": "Select an agent type",
    "customColumn": "Custom Column",
    "columnName": "Column Name",
    "back": "Back",
    "thinking": "Thinking…",
    "error": "Error",
    "refreshColumn": "Re-run Column",
    "advancedPrompt": "Advanced: System Prompt",
    "userInputColumn": "User Input"
  },
  "docs": {
    "selectTemplate": "Select a document template",
    "download": "Download",
    "sectionsComplete": "{count} of {total} sections complete",
    "generatingFile": "Generating file...",
    "fileGenerationError": "File generation failed",
    "retry": "Retry",
    "retryAllFailed": "Retry failed sections",
    "sectionsFailed": "{count} section(s) failed"
  },
  "chat": {
    "title": "AI Assistant",
    "placeholder": "Ask about this submission...",
    "send": "Send",
    "thinking": "Thinking...",
    "newThread": "New Thread",
    "clearThread": "Clear Thread",
    "contextBound": "Submission context",
    "noContext": "General assistant",
    "errorFailed": "Failed to send message. Please try again.",
    "welcomeMessage": "Ask me anything about your data. I can help analyze content, extract information, and suggest improvements.",
    "showMore": "Show more",
    "showLess": "Show less",
    "downloadDocument": "Download document",
    "pageLabel": "Page",
    "viewDocument": "View document",
    "viewTable": "View table",
    "viewImage": "View image"
  }
}`

const cmdMessagesDE = `{
  "commandIsland": {
    "queryMode": "Filter",
    "aiMode": "KI-Assistent",
    "clearQuery": "Filter löschen",
    "defaultPlaceholder": "Eingabe zum Filtern...",
    "aiPlaceholder": "Frage zu dieser Einreichung stellen...",
    "attach": "Datei anhängen",
    "send": "Senden",
    "toggleChat": "Chat umschalten",
    "unsupportedFileType": "Nicht unterstützter Dateityp. Akzeptiert: PDF, Word, Excel, PowerPoint, Text, Bilder.",
    "fileTooLarge": "Datei zu groß. Maximal 50 MB.",
    "removeAttachment": "Entfernen",
    "tablesMode": "AI Tabellen",
    "tablesPlaceholder": "Beschreiben Sie, was über alle Dokumente analysiert werden soll...",
    "docsMode": "AI Dokumente",
    "docsPlaceholder": "Beschreiben Sie, welches Dokument erstellt werden soll...",
    "aiSuggestions": "KI-Vorschläge",
    "suggestSummarize": "Einreichung zusammenfassen",
    "suggestCompliance": "Konformitätsprüfung",
    "suggestFindings": "Befunde auflisten",
    "suggestCrossRef": "Querverweise prüfen",
    "suggestRisks": "Qualitätsrisiken",
    "suggestExtractData": "Daten extrahieren"
  },
  "tables": {
    "document": "Dokument",
    "runAll": "Alle ausführen",
    "addColumn": "Spalte hinzufügen",
    "export": "CSV exportieren",
    "runColumn": "Spalte ausführen",
    "removeColumn": "Entfernen",
    "columnConfig": "Spalte konfigurieren",
    "modelSelector": "Modell",
    "outputFormat": "Ausgabeformat",
    "agentDescription": "Agent-Prompt",
    "save": "Speichern",
    "selectUseCase": "Anwendungsfall auswählen",
    "cellsComplete": "{count} von {total} Zellen abgeschlossen",
    "noSubmission": "Keine Einreichung ausgewählt",
    "answer": "Antwort",
    "explanation": "Erklärung",
    "sourceReference": "Quellenreferenz",
    "selectAgent": "Agententyp auswählen",
    "customColumn": "Benutzerdefinierte Spalte",
    "columnName": "Spaltenname",
    "back": "Zurück",
    "thinking": "Denkt nach…",
    "error": "Fehler",
    "refreshColumn": "Spalte neu ausführen",
    "advancedPrompt": "Erweitert: System-Prompt",
    "userInputColumn": "Benutzereingabe"
  },
  "docs": {
    "selectTemplate": "Dokumentvorlage auswählen",
    "download": "Herunterladen",
    "sectionsComplete": "{count} von {total} Abschnitten abgeschlossen",
    "generatingFile": "Datei wird erstellt...",
    "fileGenerationError": "Dateierstellung fehlgeschlagen",
    "retry": "Erneut versuchen",
    "retryAllFailed": "Fehlgeschlagene Abschnitte erneut versuchen",
    "sectionsFailed": "{count} Abschnitt(e) fehlgeschlagen"
  },
  "chat": {
    "title": "KI-Assistent",
    "placeholder": "Frage zu dieser Einreichung stellen...",
    "send": "Senden",
    "thinking": "Denkt nach...",
    "newThread": "Neues Gespräch",
    "clearThread": "Gespräch löschen",
    "contextBound": "Einreichungskontext",
    "noContext": "Allgemeiner Assistent",
    "errorFailed": "Nachricht konnte nicht gesendet werden. Bitte versuchen Sie es erneut.",
    "welcomeMessage": "Fragen Sie mich zu Ihren Daten. Ich kann Inhalte analysieren, Informationen extrahieren und Verbesserungen vorschlagen.",
    "showMore": "Mehr anzeigen",
    "showLess": "Weniger anzeigen",
    "downloadDocument": "Dokument herunterladen",
    "pageLabel": "Seite",
    "viewDocument": "Dokument anzeigen",
    "viewTable": "Tabelle anzeigen",
    "viewImage": "Bild anzeigen"
  }
}`

const cmdLayoutWrapper = `"use client";

import { useEffect, useCallback } from "react";
import { CommandIslandProvider, useCommandIsland } from "@/lib/command-island-context";
import { SplitViewProvider, useSplitView } from "@/lib/split-view-context";
import { SplitViewShell } from "@/components/layout/SplitViewShell";
import { CommandIsland } from "@/components/layout/CommandIsland";
import { ChatPanel } from "@/components/chat/ChatPanel";

function ChatWiring() {
  const { setOnAiSubmit, currentSubmissionId, chatSendMessage } =
    useCommandIsland();
  const { rightPanel, openPanel } = useSplitView();

  const handleAiSubmit = useCallback(
    (message: string, attachmentIds?: string[]) => {
      if (rightPanel.open && chatSendMessage) {
        chatSendMessage(message, attachmentIds);
        return;
      }
      openPanel(
        "right",
        <ChatPanel
          submissionId={currentSubmissionId}
          initialMessage={message}
        />,
      );
    },
    [currentSubmissionId, openPanel, rightPanel.open, chatSendMessage],
  );

  useEffect(() => {
    setOnAiSubmit(() => handleAiSubmit);
    return () => setOnAiSubmit(null);
  }, [handleAiSubmit, setOnAiSubmit]);

  return null;
}

export function CommandIslandLayout({ children }: { children: React.ReactNode }) {
  return (
    <CommandIslandProvider>
      <SplitViewProvider>
        <ChatWiring />
        <div className="flex min-h-screen flex-col bg-background">
          <SplitViewShell>{children}</SplitViewShell>
          <CommandIsland />
        </div>
      </SplitViewProvider>
    </CommandIslandProvider>
  );
}
`

const cmdAppLayout = `import "@/app/globals.css";

import { type Metadata } from "next";
import { Geist } from "next/font/google";
import { NextIntlClientProvider, useLocale } from "next-intl";
import { CommandIslandLayout } from "./_components/CommandIslandLayout";

export const metadata: Metadata = {
  title: "My App",
  description: "Built with t3mono",
  icons: [{ rel: "icon", url: "/favicon.ico" }],
};

const geist = Geist({
  subsets: ["latin"],
  variable: "--font-geist-sans",
});

export default function RootLayout({
  children,
}: Readonly<{ children: React.ReactNode }>) {
  const locale = useLocale();
  return (
    <html lang={locale} className={geist.variable} suppressHydrationWarning>
      <body>
        <NextIntlClientProvider locale={locale}>
          <CommandIslandLayout>{children}</CommandIslandLayout>
        </NextIntlClientProvider>
      </body>
    </html>
  );
}
`

const cmdPageGuideStub = `// PageGuide stub -- imported by SplitViewShell
// Replace with your own page-level guide component if desired.

export function PageGuide() {
  return null;
}

export default PageGuide;
`

const cmdClaudeSkill = `# CommandIsland AI Module -- Integration Skill

This project includes the CommandIsland AI module with:

## Components
- **CommandIsland** (` + "`src/components/layout/CommandIsland.tsx`" + `) - Floating command bar with AI/Tables/Docs modes
- **SplitViewShell** (` + "`src/components/layout/SplitViewShell.tsx`" + `) - Split-panel layout system
- **ChatPanel** (` + "`src/components/chat/`" + `) - Full AI chat with streaming, file attachments, reference tokens
- **AITable** (` + "`src/components/tables/`" + `) - AI-powered data tables with agent columns
- **AIDocGenerator** (` + "`src/components/docs/`" + `) - AI document generation (PDF, Excel, PowerPoint)

## Server
- **Chat routers** (` + "`src/server/api/routers/chat.ts`" + `) - tRPC endpoints for chat threads
- **Tables routers** (` + "`src/server/api/routers/tables.ts`" + `) - tRPC endpoints for AI tables
- **Docs routers** (` + "`src/server/api/routers/docs.ts`" + `) - tRPC endpoints for doc generation
- **LLM integration** (` + "`src/server/chat/llm.ts`" + `) - Multi-provider LLM with tool calling
- **Chat tools** (` + "`src/server/chat/chat-tools.ts`" + `) - Database query tools for LLM

## Customization Points
- ` + "`src/server/chat/chat-tools.ts`" + ` - Add domain-specific tools the LLM can call
- ` + "`src/server/chat/llm.ts`" + ` - Customize the system prompt
- ` + "`src/lib/chat-tokens.ts`" + ` - Define inline reference token types
- ` + "`src/components/layout/CommandIsland.tsx`" + ` - Customize quick suggestions

## Environment Variables
- ` + "`ANTHROPIC_API_KEY`" + ` - Required for Claude models
- ` + "`OPENAI_API_KEY`" + ` - Optional for GPT models
- ` + "`AWS_REGION`" + `, ` + "`AWS_S3_BUCKET_NAME`" + `, ` + "`AWS_ACCESS_KEY_ID`" + `, ` + "`AWS_SECRET_ACCESS_KEY`" + ` - For file uploads
`
