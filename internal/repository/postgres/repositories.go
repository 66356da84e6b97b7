package postgres

// Repositories groups concrete PostgreSQL repository implementations.
type Repositories struct {
	Users       *UserRepository
	Credentials *CredentialRepository
}

// NewRepositories wires all repositories backed by the provided executor.
func NewRepositories(db pgExecutor) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Credentials: NewCredentialRepository(db),
	}
}
