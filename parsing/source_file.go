// Package parsing turns Java source files into syntax trees and declarations
package parsing

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/NickyBoy89/jgenerics/symbol"
)

// SourceFile represents a single Java source file
type SourceFile struct {
	Name   string
	Source []byte
	Ast    *sitter.Node
	// Filled in by ParseSymbols
	Symbols *symbol.FileScope
}

// ParseAST parses the file's source into a syntax tree
func (file *SourceFile) ParseAST() error {
	return file.ParseASTContext(context.Background())
}

// ParseASTContext parses the file's source into a syntax tree, stopping if the
// context is cancelled
func (file *SourceFile) ParseASTContext(ctx context.Context) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, file.Source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file.Name, err)
	}
	file.Ast = tree.RootNode()

	if file.Ast.HasError() {
		log.WithFields(log.Fields{
			"file": file.Name,
		}).Warn("Source contains syntax errors, declarations may be incomplete")
	}
	return nil
}

// ParseSymbols extracts the declarations from the parsed syntax tree. The file
// must have been parsed with ParseAST first
func (file *SourceFile) ParseSymbols() *symbol.FileScope {
	if file.Ast == nil {
		panic(fmt.Errorf("symbols requested for %s before it was parsed", file.Name))
	}
	file.Symbols = symbol.ParseSymbols(file.Ast, file.Source)
	return file.Symbols
}
