package domain

const (
	// SlateDirName is the name of the internal metadata directory.
	SlateDirName = ".slate"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ArtifactDBName is the file name of the persistent artifact store.
	ArtifactDBName = "artifacts.db"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "slate.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
