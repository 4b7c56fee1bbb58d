// Package automation runs scripted batches of simulations described in a
// YAML file:
//
//	name: restitution study
//	runs:
//	  - name: elastic
//	    scenario: ball
//	    preset: elastic
//	    output: gifs/elastic.gif
//	  - scenario: oscillator
//	    set: {b: 0, dt: 0.01}
//	    csv: out/undamped.csv
package automation
