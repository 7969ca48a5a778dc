// Package gen generates specialized conversion code for validated enum
// schemas.
//
// The generator renders one Go file per enum with
// github.com/dave/jennifer, post-processed by goimports. Each file carries
// the conversion method set (Scribe, TryScribe, Unscribe, TryUnscribe, as
// far as the schema shape allows) plus the codec method sets enabled
// through feature flags.
//
// Enums reach the generator from two frontends. Scan mode hands over
// //scribe:enum declarations found by compiler/load; the generated
// methods attach to the existing type. Schema mode hands over descriptors
// built with schema/enum; the type and constant declarations are
// generated too:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./internal/color"),
//	    gen.WithPackage("color"),
//	    gen.WithFeatures("codec/text", "codec/sql"),
//	)
//	if err != nil { ... }
//	err = gen.Generate(cfg, enums...)
package gen
