package env_test

import (
	"errors"
	"fmt"

	env "github.com/CorvidLabs/go-env"
	"github.com/CorvidLabs/go-env/decoder/dotenv"
	"github.com/CorvidLabs/go-env/interpolate"
)

func ExampleNew() {
	environment := env.New(map[string]string{
		"HOST": "localhost",
		"PORT": "8080",
	})

	port, _ := environment.Int("PORT")
	fmt.Println(environment.Get("HOST"), port)
	// Output: localhost 8080
}

func ExampleEnvironment_Merge() {
	defaults := env.New(map[string]string{"HOST": "localhost", "PORT": "8080"})
	overrides := env.New(map[string]string{"PORT": "9090"})

	merged := defaults.Merge(overrides)

	for key, value := range merged.All() {
		fmt.Printf("%s=%s\n", key, value)
	}
	// Output:
	// HOST=localhost
	// PORT=9090
}

func ExampleEnvironment_RequiredInt() {
	environment := env.New(map[string]string{"PORT": "eighty"})

	_, err := environment.RequiredInt("PORT")

	var invalidType env.InvalidTypeError
	if errors.As(err, &invalidType) {
		fmt.Println(invalidType.Key, invalidType.Type, invalidType.Value)
	}
	// Output: PORT int eighty
}

func Example_parseAndResolve() {
	values, err := dotenv.Parse("HOST=localhost\nPORT=8080\nURL=http://${HOST}:${PORT}\n")
	if err != nil {
		fmt.Println("parse failed:", err)

		return
	}

	resolved := interpolate.Expand(values, nil)
	environment := env.New(resolved)

	fmt.Println(environment.Get("URL"))
	// Output: http://localhost:8080
}
