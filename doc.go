// Package configtree is a small foundation library pairing layered
// configuration loading (see the config subpackage) with a typed application
// context that guarantees a configuration is attached before use.
//
//	var cfg AppConfig
//	if err := config.NewBuilder().
//		WithFile("config/default.toml", true).
//		WithFile("config/local.toml", false).
//		Build(&cfg); err != nil {
//		return err
//	}
//
//	ctx, err := configtree.NewContextBuilder[AppConfig]().
//		WithConfig(&cfg).
//		Build()
//
// Configuration files support ${path.to.field} variable references; see the
// config package for the merge and resolution semantics.
package configtree
