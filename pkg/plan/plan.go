package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Job is a single bank-vs-ERP reconciliation to run.
type Job struct {
	Banco string `yaml:"banco"`
	Erp   string `yaml:"erp"`
	Saida string `yaml:"saida"`
}

// Plan is a YAML description of reconciliation jobs, so several bank/ERP
// file pairs can be processed in one invocation.
type Plan struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads and validates a plan file. Jobs without an explicit output
// path get one derived from their bank file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Jobs) == 0 {
		return nil, fmt.Errorf("plan has no jobs")
	}

	for i := range p.Jobs {
		job := &p.Jobs[i]
		if job.Banco == "" || job.Erp == "" {
			return nil, fmt.Errorf("job %d missing banco or erp file", i+1)
		}
		if job.Saida == "" {
			job.Saida = defaultSaida(job.Banco)
		}
	}
	return &p, nil
}

// defaultSaida places the output next to the bank file.
func defaultSaida(banco string) string {
	ext := filepath.Ext(banco)
	return strings.TrimSuffix(banco, ext) + "-conciliacao.xlsx"
}

func (p *Plan) Print() {
	for i, job := range p.Jobs {
		fmt.Printf("[%d] banco=%s erp=%s saida=%s\n", i+1, job.Banco, job.Erp, job.Saida)
	}
}
