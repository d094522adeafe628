package types

// FileState is the tracking state of a package file
type FileState string

const (
	// FileTracked is in the repository and unchanged
	FileTracked FileState = "tracked"
	// FileModified is in the repository with local changes
	FileModified FileState = "modified"
	// FileUntracked exists in home but is not in the repository
	FileUntracked FileState = "untracked"
	// FileMissing is neither on disk nor in the repository
	FileMissing FileState = "missing"
	// FileDeleted is in the repository but gone from disk
	FileDeleted FileState = "deleted"
)

// ListPackagesResult holds the result of the 'list' command.
type ListPackagesResult struct {
	Packages []PackageInfo `json:"packages"`
}

// PackageInfo contains summary information about a single package.
type PackageInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	DotfilesDir        string `json:"dotfilesDir"`
	GitDir             string `json:"gitDir"`
	CreatedDotfilesDir bool   `json:"createdDotfilesDir"`
	CreatedRepo        bool   `json:"createdRepo"`
	DryRun             bool   `json:"dryRun"`
}

// AlreadyInitialized reports whether init found an existing repository
func (r *InitResult) AlreadyInitialized() bool {
	return !r.CreatedRepo
}

// FilesResult holds the result of the 'files' command.
type FilesResult struct {
	Packages []PackageFiles `json:"packages"`
}

// PackageFiles lists the home files a package installs.
type PackageFiles struct {
	Name  string   `json:"name"`
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

// AllFiles returns every file across packages, in package order
func (r *FilesResult) AllFiles() []string {
	var all []string
	for _, p := range r.Packages {
		all = append(all, p.Files...)
	}
	return all
}

// StoreResult holds the result of the 'store' command.
type StoreResult struct {
	Packages  []PackageStore `json:"packages"`
	Committed bool           `json:"committed"`
	DryRun    bool           `json:"dryRun"`
}

// PackageStore records what was added to the repository for a package.
type PackageStore struct {
	Name string `json:"name"`
	// Stored are home-relative paths handed to git add
	Stored []string `json:"stored"`
	// Missing are absolute paths the package installs that do not exist
	Missing []string `json:"missing"`
	// PackageDir is the home-relative package directory, empty when the
	// dotfiles directory lies outside home
	PackageDir string `json:"packageDir"`
}

// InstallResult holds the result of the 'install' command.
type InstallResult struct {
	// Packages are the selected package names, in install order
	Packages  []string   `json:"packages"`
	Installed []string   `json:"installed"`
	Conflicts []Conflict `json:"conflicts"`
	// Modified are tracked files with local changes that install may overwrite
	Modified []Conflict `json:"modified"`
	DryRun   bool       `json:"dryRun"`
}

// Conflict is a file a package would install that needs attention
type Conflict struct {
	Package string `json:"package"`
	Path    string `json:"path"`
}

// StatusResult holds the result of the 'status' command.
type StatusResult struct {
	Packages []PackageStatus `json:"packages"`
}

// PackageStatus is the tracking state of every file of a package.
type PackageStatus struct {
	Name  string       `json:"name"`
	Files []FileStatus `json:"files"`
}

// FileStatus is a single file's state
type FileStatus struct {
	Path  string    `json:"path"`
	State FileState `json:"state"`
}

// Counts tallies the files of a package by state
func (p *PackageStatus) Counts() map[FileState]int {
	counts := make(map[FileState]int)
	for _, f := range p.Files {
		counts[f.State]++
	}
	return counts
}

// Clean reports whether every file is tracked and unchanged
func (p *PackageStatus) Clean() bool {
	for _, f := range p.Files {
		if f.State != FileTracked {
			return false
		}
	}
	return true
}
