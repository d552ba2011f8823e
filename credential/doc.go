// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package credential generates voter credentials and voting tokens.

# Credential Pairs

Each voter on a roster receives a one-time (voterID, voterKey) pair:

	voterID, voterKey, err := credential.Generate()

Voter IDs are 8 uppercase hex characters (4 random bytes), voter keys
12 uppercase hex characters (6 random bytes). Possession of the pair is
the only proof of voting eligibility; neither value is ever reissued.

# Voting Tokens

Each election has a public voting token identifying its ballot page:

	token, err := credential.GenerateToken()

Tokens are 16 hex characters (8 random bytes). The store checks tokens
for global uniqueness and regenerates on collision.

# ID Generation

Random hex IDs for database records:

	id, err := credential.GenerateID(12)  // 24 hex characters

All values come from crypto/rand.
*/
package credential
