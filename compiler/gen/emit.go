package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/scribegen/scribe/schema/enum"
)

// Import paths referenced by generated code.
const (
	scribePkg  = "github.com/scribegen/scribe"
	gqlPkg     = scribePkg + "/contrib/graphql"
	msgpackPkg = scribePkg + "/contrib/msgpack"

	vmsgpackPkg = "github.com/vmihailenco/msgpack/v5"
)

// render builds the generated file for one enum.
func render(c *Config, e *Enum) *jen.File {
	pkg := e.Package
	if pkg == "" {
		pkg = c.Package
	}
	f := jen.NewFile(pkg)
	f.HeaderComment(c.Header)
	f.ImportName(scribePkg, "scribe")
	f.ImportName(gqlPkg, "graphql")
	f.ImportName(vmsgpackPkg, "msgpack")
	// Both msgpack packages share a name; alias ours.
	f.ImportAlias(msgpackPkg, "scribemsgpack")

	if e.Declare {
		genDecls(f, e)
	}
	genValues(f, e)
	genIsValid(f, e)
	if e.CanScribe() {
		genScribe(f, e)
	}
	genTryScribe(f, e)
	if e.CanUnscribe() {
		genUnscribe(f, e)
	}
	genTryUnscribe(f, e)

	if c.codecFeatures() {
		genTexts(f, e)
	}
	if c.hasFeature(FeatureTextCodec.Name) {
		genTextCodec(f, e)
	}
	if c.hasFeature(FeatureJSONCodec.Name) {
		genJSONCodec(f, e)
	}
	if c.hasFeature(FeatureSQLCodec.Name) {
		genSQLCodec(f, e)
	}
	if c.hasFeature(FeatureGQLCodec.Name) {
		genGQLCodec(f, e)
	}
	if c.hasFeature(FeatureMsgpackCodec.Name) {
		genMsgpackCodec(f, e)
	}
	return f
}

// genDecls generates the type and constant declarations (schema mode).
func genDecls(f *jen.File, e *Enum) {
	name := e.Name()
	if e.Comment() != "" {
		f.Comment(e.Comment())
	} else {
		f.Commentf("%s is an enumerated type with a text form.", name)
	}
	if e.Backing() == enum.BackingString {
		f.Type().Id(name).String()
	} else {
		f.Type().Id(name).Int()
	}

	f.Const().DefsFunc(func(defs *jen.Group) {
		for i, m := range e.Members() {
			if m.Comment != "" {
				defs.Comment(m.Comment)
			}
			switch {
			case e.Backing() == enum.BackingString:
				defs.Id(e.ConstName(m)).Id(name).Op("=").Lit(constText(m))
			case i == 0:
				defs.Id(e.ConstName(m)).Id(name).Op("=").Iota()
			default:
				defs.Id(e.ConstName(m))
			}
		}
	})
}

// constText is the declared value of a string-backed constant: the
// assigned text for normal members, the member name for ignored ones, and
// empty for the catch-all (its value is whatever input it captures).
func constText(m *enum.Resolved) string {
	switch m.Role {
	case enum.RoleNormal:
		return m.Text
	case enum.RoleIgnored:
		return m.Name
	default:
		return ""
	}
}

// genValues generates the Values method listing every declared constant.
func genValues(f *jen.File, e *Enum) {
	name := e.Name()
	f.Commentf("Values returns all declared %s values.", name)
	f.Func().Params(jen.Id(name)).Id("Values").Params().Index().Id(name).Block(
		jen.Return(jen.Index().Id(name).ValuesFunc(func(vals *jen.Group) {
			for _, m := range e.Members() {
				vals.Id(e.ConstName(m))
			}
		})),
	)
}

// genIsValid generates the IsValid method reporting declared membership.
func genIsValid(f *jen.File, e *Enum) {
	name := e.Name()
	f.Commentf("IsValid reports whether v is a declared %s value.", name)
	f.Func().Params(jen.Id("v").Id(name)).Id("IsValid").Params().Bool().BlockFunc(func(body *jen.Group) {
		body.Switch(jen.Id("v")).BlockFunc(func(sw *jen.Group) {
			cases := make([]jen.Code, 0, len(e.Members()))
			for _, m := range e.Members() {
				cases = append(cases, jen.Id(e.ConstName(m)))
			}
			sw.Case(cases...).Block(jen.Return(jen.True()))
		})
		body.Return(jen.False())
	})
}

// genScribe generates the total forward conversion. Only emitted when the
// schema has no ignored members; an out-of-set value is a programming
// error and panics.
func genScribe(f *jen.File, e *Enum) {
	name := e.Name()
	_, hasOther := e.Other()
	f.Commentf("Scribe returns the text form of v. It panics when v is not a declared %s value.", name)
	f.Func().Params(jen.Id("v").Id(name)).Id("Scribe").Params().String().BlockFunc(func(body *jen.Group) {
		body.Switch(jen.Id("v")).BlockFunc(func(sw *jen.Group) {
			for _, m := range e.Members() {
				if m.Role == enum.RoleNormal {
					sw.Case(jen.Id(e.ConstName(m))).Block(jen.Return(jen.Lit(m.Text)))
				}
			}
		})
		if hasOther {
			// The catch-all value is its own captured text.
			body.Return(jen.String().Call(jen.Id("v")))
			return
		}
		if e.Backing() == enum.BackingString {
			body.Panic(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit("scribe: Scribe on invalid "+name+" value %q"),
				jen.String().Call(jen.Id("v")),
			))
		} else {
			body.Panic(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit("scribe: Scribe on invalid "+name+" value %d"),
				jen.Int().Call(jen.Id("v")),
			))
		}
	})
}

// genTryScribe generates the partial forward conversion, which exists for
// every enum.
func genTryScribe(f *jen.File, e *Enum) {
	name := e.Name()
	_, hasOther := e.Other()
	f.Commentf("TryScribe returns the text form of v, reporting false for ignored and undeclared values.")
	f.Func().Params(jen.Id("v").Id(name)).Id("TryScribe").Params().Params(jen.String(), jen.Bool()).BlockFunc(func(body *jen.Group) {
		body.Switch(jen.Id("v")).BlockFunc(func(sw *jen.Group) {
			for _, m := range e.Members() {
				if m.Role == enum.RoleNormal {
					sw.Case(jen.Id(e.ConstName(m))).Block(jen.Return(jen.Lit(m.Text), jen.True()))
				}
			}
		})
		if hasOther {
			body.Return(jen.String().Call(jen.Id("v")), jen.True())
		} else {
			body.Return(jen.Lit(""), jen.False())
		}
	})
}

// matchArms emits the two-stage reverse match: exact arms for
// case-sensitive members, then one fold of the input against pre-folded
// arms when any case-insensitive member exists. found wraps the matched
// member in the operation's return shape.
func matchArms(body *jen.Group, e *Enum, found func(m *enum.Resolved) jen.Code) {
	var sensitive, insensitive []*enum.Resolved
	for _, m := range e.Members() {
		if m.Role != enum.RoleNormal {
			continue
		}
		if m.Insensitive {
			insensitive = append(insensitive, m)
		} else {
			sensitive = append(sensitive, m)
		}
	}
	if len(sensitive) > 0 {
		body.Switch(jen.Id("s")).BlockFunc(func(sw *jen.Group) {
			for _, m := range sensitive {
				sw.Case(jen.Lit(m.Text)).Block(found(m))
			}
		})
	}
	if len(insensitive) > 0 {
		body.Switch(jen.Qual("strings", "ToLower").Call(jen.Id("s"))).BlockFunc(func(sw *jen.Group) {
			for _, m := range insensitive {
				sw.Case(jen.Lit(m.Folded)).Block(found(m))
			}
		})
	}
}

// genUnscribe generates the total reverse conversion. Only emitted when
// the schema has a catch-all member to absorb unmatched input.
func genUnscribe(f *jen.File, e *Enum) {
	name := e.Name()
	f.Commentf("Unscribe%s converts s to a %s, capturing unmatched input verbatim.", name, name)
	f.Func().Id("Unscribe"+name).Params(jen.Id("s").String()).Id(name).BlockFunc(func(body *jen.Group) {
		matchArms(body, e, func(m *enum.Resolved) jen.Code {
			return jen.Return(jen.Id(e.ConstName(m)))
		})
		body.Return(jen.Id(name).Call(jen.Id("s")))
	})
}

// genTryUnscribe generates the partial reverse conversion, which exists
// for every enum. With a catch-all it is the total conversion wrapped in
// the optional.
func genTryUnscribe(f *jen.File, e *Enum) {
	name := e.Name()
	f.Commentf("TryUnscribe%s converts s to a %s, reporting false for unmatched input.", name, name)
	f.Func().Id("TryUnscribe"+name).Params(jen.Id("s").String()).Params(jen.Id(name), jen.Bool()).BlockFunc(func(body *jen.Group) {
		if e.CanUnscribe() {
			body.Return(jen.Id("Unscribe"+name).Call(jen.Id("s")), jen.True())
			return
		}
		matchArms(body, e, func(m *enum.Resolved) jen.Code {
			return jen.Return(jen.Id(e.ConstName(m)), jen.True())
		})
		if e.Backing() == enum.BackingString {
			body.Return(jen.Lit(""), jen.False())
		} else {
			body.Return(jen.Lit(0), jen.False())
		}
	})
}

// genTexts generates the expected-texts list shared by the codec method
// sets for error reporting.
func genTexts(f *jen.File, e *Enum) {
	f.Commentf("%s lists the texts of the normal %s members for error reporting.", e.textsVar(), e.Name())
	f.Var().Id(e.textsVar()).Op("=").Index().String().ValuesFunc(func(vals *jen.Group) {
		for _, text := range e.Texts() {
			vals.Lit(text)
		}
	})
}

func genTextCodec(f *jen.File, e *Enum) {
	name := e.Name()
	f.Comment("MarshalText implements encoding.TextMarshaler.")
	f.Func().Params(jen.Id("v").Id(name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Qual(scribePkg, "MarshalText").Call(jen.Lit(name), jen.Id("v"))),
	)
	f.Comment("UnmarshalText implements encoding.TextUnmarshaler.")
	f.Func().Params(jen.Id("v").Op("*").Id(name)).Id("UnmarshalText").Params(jen.Id("data").Index().Byte()).Error().Block(
		jen.List(jen.Id("u"), jen.Err()).Op(":=").Qual(scribePkg, "UnmarshalText").Call(
			jen.Lit(name), jen.Id("TryUnscribe"+name), jen.Id("data"), jen.Id(e.textsVar()).Op("..."),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("v").Op("=").Id("u"),
		jen.Return(jen.Nil()),
	)
}

func genJSONCodec(f *jen.File, e *Enum) {
	name := e.Name()
	f.Comment("MarshalJSON implements json.Marshaler.")
	f.Func().Params(jen.Id("v").Id(name)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Qual(scribePkg, "MarshalJSON").Call(jen.Lit(name), jen.Id("v"))),
	)
	f.Comment("UnmarshalJSON implements json.Unmarshaler.")
	f.Func().Params(jen.Id("v").Op("*").Id(name)).Id("UnmarshalJSON").Params(jen.Id("data").Index().Byte()).Error().Block(
		jen.List(jen.Id("u"), jen.Err()).Op(":=").Qual(scribePkg, "UnmarshalJSON").Call(
			jen.Lit(name), jen.Id("TryUnscribe"+name), jen.Id("data"), jen.Id(e.textsVar()).Op("..."),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("v").Op("=").Id("u"),
		jen.Return(jen.Nil()),
	)
}

func genSQLCodec(f *jen.File, e *Enum) {
	name := e.Name()
	f.Comment("Value implements driver.Valuer.")
	f.Func().Params(jen.Id("v").Id(name)).Id("Value").Params().Params(jen.Qual("database/sql/driver", "Value"), jen.Error()).Block(
		jen.Return(jen.Qual(scribePkg, "Value").Call(jen.Lit(name), jen.Id("v"))),
	)
	f.Comment("Scan implements sql.Scanner.")
	f.Func().Params(jen.Id("v").Op("*").Id(name)).Id("Scan").Params(jen.Id("src").Any()).Error().Block(
		jen.List(jen.Id("u"), jen.Err()).Op(":=").Qual(scribePkg, "Scan").Call(
			jen.Lit(name), jen.Id("TryUnscribe"+name), jen.Id("src"), jen.Id(e.textsVar()).Op("..."),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("v").Op("=").Id("u"),
		jen.Return(jen.Nil()),
	)
}

func genGQLCodec(f *jen.File, e *Enum) {
	name := e.Name()
	f.Comment("MarshalGQL implements graphql.Marshaler.")
	f.Func().Params(jen.Id("v").Id(name)).Id("MarshalGQL").Params(jen.Id("w").Qual("io", "Writer")).Block(
		jen.Qual(gqlPkg, "MarshalGQL").Call(jen.Id("w"), jen.Lit(name), jen.Id("v")),
	)
	f.Comment("UnmarshalGQL implements graphql.Unmarshaler.")
	f.Func().Params(jen.Id("v").Op("*").Id(name)).Id("UnmarshalGQL").Params(jen.Id("src").Any()).Error().Block(
		jen.List(jen.Id("u"), jen.Err()).Op(":=").Qual(gqlPkg, "UnmarshalGQL").Call(
			jen.Lit(name), jen.Id("TryUnscribe"+name), jen.Id("src"), jen.Id(e.textsVar()).Op("..."),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("v").Op("=").Id("u"),
		jen.Return(jen.Nil()),
	)
}

func genMsgpackCodec(f *jen.File, e *Enum) {
	name := e.Name()
	f.Comment("EncodeMsgpack implements msgpack.CustomEncoder.")
	f.Func().Params(jen.Id("v").Id(name)).Id("EncodeMsgpack").Params(jen.Id("enc").Op("*").Qual(vmsgpackPkg, "Encoder")).Error().Block(
		jen.Return(jen.Qual(msgpackPkg, "Encode").Call(jen.Id("enc"), jen.Lit(name), jen.Id("v"))),
	)
	f.Comment("DecodeMsgpack implements msgpack.CustomDecoder.")
	f.Func().Params(jen.Id("v").Op("*").Id(name)).Id("DecodeMsgpack").Params(jen.Id("dec").Op("*").Qual(vmsgpackPkg, "Decoder")).Error().Block(
		jen.List(jen.Id("u"), jen.Err()).Op(":=").Qual(msgpackPkg, "Decode").Call(
			jen.Id("dec"), jen.Lit(name), jen.Id("TryUnscribe"+name), jen.Id(e.textsVar()).Op("..."),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("v").Op("=").Id("u"),
		jen.Return(jen.Nil()),
	)
}
