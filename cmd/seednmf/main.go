// SPDX-License-Identifier: MIT

// Command seednmf trains a seed-guided topic model on a Matrix Market
// term-document matrix and writes the document-topic (W) and topic-term (H)
// factors as TSV files.
//
// Usage:
//
//	seednmf -matrix corpus.mtx -vocab vocab.txt -seeds lexicon.txt \
//	        -k 15 -guided 0 -out model -logtostderr -v=1
//
// writes model.W.tsv and model.H.tsv.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
	"github.com/katalvlaran/seednmf/seednmf"
	"github.com/katalvlaran/seednmf/termdoc"
)

var (
	matrixFile = flag.String("matrix", "", "term-document matrix in Matrix Market coordinate format")
	vocabFile  = flag.String("vocab", "", "vocabulary file, one term per matrix column")
	seedsFile  = flag.String("seeds", "", "seed lexicon, one word per line")
	topics     = flag.Int("k", seednmf.DefaultTopics, "number of topics")
	guided     = flag.String("guided", "0", "comma-separated guided topic indices")
	wMax       = flag.Float64("wmax", seednmf.DefaultSeedExclusionCeiling, "largest weight a document without seed words may give a guided topic")
	thetaMin   = flag.Float64("theta", seednmf.DefaultSeedMassFloor, "least share of a guided topic's mass on seed words")
	eta        = flag.Float64("eta", seednmf.DefaultStep, "dual ascent step")
	iterations = flag.Int("iter", seednmf.DefaultMaxIter, "maximum number of iterations")
	tolerance  = flag.Float64("tol", seednmf.DefaultTolerance, "stop once the divergence is below this value")
	rngSeed    = flag.Int64("seed", 0, "random seed for the initial factors (0 = fixed default)")
	outPrefix  = flag.String("out", "seednmf", "output prefix for <out>.W.tsv and <out>.H.tsv")
	l2         = flag.Bool("l2", false, "write H with rows scaled to unit L2 norm")
)

func main() {
	flag.Parse()
	defer log.Flush()

	if *matrixFile == "" {
		log.Exitf("seednmf: -matrix is required")
	}

	v, err := loadMatrix(*matrixFile)
	if err != nil {
		log.Exitf("seednmf: %v", err)
	}
	docs, terms := v.Dims()
	log.Infof("loaded %d documents × %d terms, %d entries", docs, terms, v.NNZ())

	opts := seednmf.DefaultOptions()
	opts.Topics = *topics
	opts.SeedExclusionCeiling = *wMax
	opts.SeedMassFloor = *thetaMin
	opts.Step = *eta
	opts.MaxIter = *iterations
	opts.Tolerance = *tolerance
	opts.Seed = *rngSeed
	if opts.GuidedTopics, err = parseIndices(*guided); err != nil {
		log.Exitf("seednmf: -guided: %v", err)
	}
	if opts.SeedTerms, err = loadSeeds(*vocabFile, *seedsFile, terms); err != nil {
		log.Exitf("seednmf: %v", err)
	}
	log.Infof("%d seed terms, guided topics %v", len(opts.SeedTerms), opts.GuidedTopics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := seednmf.TrainContext(ctx, v, opts)
	if err != nil {
		log.Exitf("seednmf: %v", err)
	}
	log.Infof("%s after %d iterations, divergence %g",
		res.Status, res.Iterations, res.Divergence[len(res.Divergence)-1])

	h := res.H
	if *l2 {
		if h, _, err = matrix.NormalizeRowsL2(h); err != nil {
			log.Exitf("seednmf: %v", err)
		}
	}
	if err = writeTSV(*outPrefix+".W.tsv", res.W); err != nil {
		log.Exitf("seednmf: %v", err)
	}
	if err = writeTSV(*outPrefix+".H.tsv", h); err != nil {
		log.Exitf("seednmf: %v", err)
	}
}

func loadMatrix(path string) (*matrix.CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return termdoc.ReadMatrixMarket(f)
}

// loadSeeds maps the lexicon onto vocabulary columns. Without -seeds the
// model runs unguided; -seeds without -vocab is an error.
func loadSeeds(vocabPath, seedsPath string, terms int) ([]int, error) {
	if seedsPath == "" {
		return nil, nil
	}
	if vocabPath == "" {
		return nil, fmt.Errorf("-seeds needs -vocab")
	}

	vf, err := os.Open(vocabPath)
	if err != nil {
		return nil, err
	}
	defer vf.Close()
	vocab, err := termdoc.ReadVocabulary(vf)
	if err != nil {
		return nil, err
	}
	if len(vocab) != terms {
		return nil, fmt.Errorf("vocabulary has %d terms, matrix has %d columns", len(vocab), terms)
	}

	sf, err := os.Open(seedsPath)
	if err != nil {
		return nil, err
	}
	defer sf.Close()
	lexicon, err := termdoc.ReadLexicon(sf)
	if err != nil {
		return nil, err
	}

	return termdoc.SeedIndices(vocab, lexicon), nil
}

// parseIndices parses "0,2,5"; an empty string gives no indices.
func parseIndices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}

	return out, nil
}

func writeTSV(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = termdoc.WriteTSV(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
