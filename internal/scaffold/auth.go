package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/t3mono-labs/t3mono/internal/artifact"
)

// AuthProvider selects the authentication library wired into the base
// project.
type AuthProvider string

const (
	BetterAuth AuthProvider = "better-auth"
	NextAuth   AuthProvider = "next-auth"
)

// AuthProviders lists the valid providers for flag validation and prompts.
var AuthProviders = []AuthProvider{BetterAuth, NextAuth}

// ParseAuthProvider validates an auth provider identifier from user input.
func ParseAuthProvider(name string) (AuthProvider, error) {
	switch AuthProvider(name) {
	case BetterAuth, NextAuth:
		return AuthProvider(name), nil
	}
	return "", fmt.Errorf("unknown auth provider %q: valid providers are %s, %s", name, BetterAuth, NextAuth)
}

// scaffoldAuth writes the provider's auth configuration, API route, and
// client, and adds the provider's models to the Prisma schema.
func scaffoldAuth(root string, provider AuthProvider) error {
	var files []struct{ path, content string }
	var models string

	switch provider {
	case NextAuth:
		files = []struct{ path, content string }{
			{"src/server/auth.ts", nextAuthConfig},
			{"src/app/api/auth/[...nextauth]/route.ts", nextAuthRoute},
			{"src/lib/auth-client.ts", nextAuthClient},
			{"src/components/providers/session-provider.tsx", nextAuthSessionProvider},
		}
		models = nextAuthPrismaModels
	default:
		files = []struct{ path, content string }{
			{"src/server/auth.ts", betterAuthConfig},
			{"src/app/api/auth/[...all]/route.ts", betterAuthRoute},
			{"src/lib/auth-client.ts", betterAuthClient},
		}
		models = betterAuthPrismaModels
	}

	for _, f := range files {
		if err := writeFile(root, f.path, f.content); err != nil {
			return err
		}
	}

	return addSchemaModels(root, models)
}

// addSchemaModels merges a model fragment into the project's Prisma schema.
// Models already present are left alone, so re-applying is safe.
func addSchemaModels(root, fragment string) error {
	schemaPath := filepath.Join(root, "prisma", "schema.prisma")
	schema, err := artifact.LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	if _, err := schema.AddBlocks(fragment); err != nil {
		return err
	}
	return schema.Save(schemaPath)
}

const betterAuthConfig = `import { betterAuth } from "better-auth";
import { prismaAdapter } from "better-auth/adapters/prisma";
import { db } from "@/server/db";

export const auth = betterAuth({
  database: prismaAdapter(db, {
    provider: "postgresql",
  }),
  emailAndPassword: {
    enabled: true,
  },
  session: {
    expiresIn: 60 * 60 * 24 * 7, // 7 days
    updateAge: 60 * 60 * 24, // 1 day
  },
});

export type Session = typeof auth.$Infer.Session;
`

const betterAuthRoute = `import { auth } from "@/server/auth";
import { toNextJsHandler } from "better-auth/next-js";

export const { GET, POST } = toNextJsHandler(auth);
`

const betterAuthClient = `import { createAuthClient } from "better-auth/react";

export const authClient = createAuthClient({
  baseURL: process.env.NEXT_PUBLIC_APP_URL,
});

export const { signIn, signUp, signOut, useSession } = authClient;
`

const betterAuthPrismaModels = `
// ============================================================================
// Better Auth Models
// ============================================================================

model User {
  id            String    @id @default(cuid())
  name          String?
  email         String    @unique
  emailVerified DateTime?
  image         String?
  createdAt     DateTime  @default(now())
  updatedAt     DateTime  @updatedAt

  sessions Session[]
  accounts Account[]
}

model Session {
  id        String   @id @default(cuid())
  expiresAt DateTime
  token     String   @unique
  ipAddress String?
  userAgent String?
  userId    String
  user      User     @relation(fields: [userId], references: [id], onDelete: Cascade)

  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt
}

model Account {
  id                    String  @id @default(cuid())
  accountId             String
  providerId            String
  userId                String
  user                  User    @relation(fields: [userId], references: [id], onDelete: Cascade)
  accessToken           String?
  refreshToken          String?
  idToken               String?
  accessTokenExpiresAt  DateTime?
  refreshTokenExpiresAt DateTime?
  scope                 String?
  password              String?

  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt

  @@unique([providerId, accountId])
}

model Verification {
  id         String   @id @default(cuid())
  identifier String
  value      String
  expiresAt  DateTime
  createdAt  DateTime @default(now())
  updatedAt  DateTime @updatedAt

  @@unique([identifier, value])
}
`

const nextAuthConfig = `import { PrismaAdapter } from "@auth/prisma-adapter";
import { type NextAuthOptions, getServerSession } from "next-auth";
import GithubProvider from "next-auth/providers/github";
import CredentialsProvider from "next-auth/providers/credentials";
import { db } from "@/server/db";

export const authOptions: NextAuthOptions = {
  adapter: PrismaAdapter(db),
  providers: [
    GithubProvider({
      clientId: process.env.GITHUB_CLIENT_ID ?? "",
      clientSecret: process.env.GITHUB_CLIENT_SECRET ?? "",
    }),
    CredentialsProvider({
      name: "credentials",
      credentials: {
        email: { label: "Email", type: "email" },
        password: { label: "Password", type: "password" },
      },
      async authorize(credentials) {
        // Add your own logic here to validate credentials
        if (!credentials?.email || !credentials?.password) {
          return null;
        }

        const user = await db.user.findUnique({
          where: { email: credentials.email },
        });

        if (!user) {
          return null;
        }

        return {
          id: user.id,
          email: user.email,
          name: user.name,
          image: user.image,
        };
      },
    }),
  ],
  session: {
    strategy: "jwt",
  },
  pages: {
    signIn: "/auth/signin",
  },
  callbacks: {
    session: ({ session, token }) => ({
      ...session,
      user: {
        ...session.user,
        id: token.sub,
      },
    }),
    jwt: ({ token, user }) => {
      if (user) {
        token.sub = user.id;
      }
      return token;
    },
  },
};

export const getServerAuthSession = () => getServerSession(authOptions);
`

const nextAuthRoute = `import NextAuth from "next-auth";
import { authOptions } from "@/server/auth";

const handler = NextAuth(authOptions);

export { handler as GET, handler as POST };
`

const nextAuthClient = `import { useSession, signIn, signOut } from "next-auth/react";

export { useSession, signIn, signOut };

export function useAuth() {
  const { data: session, status } = useSession();

  return {
    session,
    user: session?.user,
    isLoading: status === "loading",
    isAuthenticated: status === "authenticated",
    signIn,
    signOut,
  };
}
`

const nextAuthSessionProvider = `"use client";

import { SessionProvider as NextAuthSessionProvider } from "next-auth/react";

export function SessionProvider({ children }: { children: React.ReactNode }) {
  return <NextAuthSessionProvider>{children}</NextAuthSessionProvider>;
}
`

const nextAuthPrismaModels = `
// ============================================================================
// NextAuth Models
// ============================================================================

model User {
  id            String    @id @default(cuid())
  name          String?
  email         String?   @unique
  emailVerified DateTime?
  image         String?
  accounts      Account[]
  sessions      Session[]
}

model Account {
  id                String  @id @default(cuid())
  userId            String
  type              String
  provider          String
  providerAccountId String
  refresh_token     String? @db.Text
  access_token      String? @db.Text
  expires_at        Int?
  token_type        String?
  scope             String?
  id_token          String? @db.Text
  session_state     String?
  user              User    @relation(fields: [userId], references: [id], onDelete: Cascade)

  @@unique([provider, providerAccountId])
}

model Session {
  id           String   @id @default(cuid())
  sessionToken String   @unique
  userId       String
  expires      DateTime
  user         User     @relation(fields: [userId], references: [id], onDelete: Cascade)
}

model VerificationToken {
  identifier String
  token      String
  expires    DateTime

  @@unique([identifier, token])
}
`
