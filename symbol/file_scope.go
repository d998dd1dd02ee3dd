package symbol

import "github.com/NickyBoy89/jgenerics/jtype"

// FileScope represents the scope in a single source file, that can contain one
// or more source classes
type FileScope struct {
	// The global package that the file is located in
	Package string
	// Every external package that is imported into the file
	// Formatted as map[ImportedType: full.package.path]
	Imports map[string]string
	// Top-level classes/interfaces/enums declared in this file, in source order
	TopLevelClasses []*ClassScope
}

// FindClass searches through a file to find if a given class has been defined
// at its root class, or within any of the subclasses
func (fs *FileScope) FindClass(name string) *jtype.Declaration {
	for _, top := range fs.TopLevelClasses {
		if decl := top.FindClass(name); decl != nil {
			return decl
		}
	}
	return nil
}

// FindClassScope searches for the class scope (not just its declaration) by name.
func (fs *FileScope) FindClassScope(name string) *ClassScope {
	for _, top := range fs.TopLevelClasses {
		if scope := top.FindClassScope(name); scope != nil {
			return scope
		}
	}
	return nil
}

// Declarations returns every declaration in the file, nested ones included
func (fs *FileScope) Declarations() []*jtype.Declaration {
	var decls []*jtype.Declaration
	for _, top := range fs.TopLevelClasses {
		decls = append(decls, top.Declarations()...)
	}
	return decls
}
