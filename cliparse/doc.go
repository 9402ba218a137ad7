// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: connection string (default: file:qa.db)
  - DatabaseType: sqlite, postgres (lib/pq) or pgx (inferred from the URL)
  - SigningSecret: HMAC secret for access tokens (required)
  - TokenTTL: access token lifetime (default: 24h)
  - WebhookURL: answer notifications, disabled when empty
  - AdminBootstrapCode: grants is_admin at registration when matched
  - AuthRateLimit: requests/second per IP on /register and /login (default: 5)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-secret       Signing secret
	-admin-code   Admin bootstrap code
	-webhook      Webhook URL
	-token-ttl    Token lifetime
	-auth-rate    Auth rate limit
	-log-level    Log level

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SECRET_KEY      → -secret
	ADMIN_SECRET    → -admin-code
	WEBHOOK_URL     → -webhook
	TOKEN_TTL       → -token-ttl
	AUTH_RATE_LIMIT → -auth-rate
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing.

# Validation

ParseFlags returns an error if SECRET_KEY is missing or any value fails to
parse.
*/
package cliparse
