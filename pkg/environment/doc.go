// Package environment names the deployment environment a session service
// runs in and carries it through context.Context.
//
// Parse turns an APP_ENV value into one of Development, Staging or
// Production. The logger package uses the result to choose its output
// preset, and LoggerExtractor adds the value to every record logged with a
// context that carries it.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//	    // production-only behaviour
//	}
package environment
