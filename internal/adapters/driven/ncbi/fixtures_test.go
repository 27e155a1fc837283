package ncbi

const putResponse = `<!DOCTYPE html>
<html><body>
<!--QBlastInfoBegin
    RID = RID123ABC
    RTOE = 25
QBlastInfoEnd
-->
</body></html>`

const reportXML = `<?xml version="1.0"?>
<!DOCTYPE BlastOutput PUBLIC "-//NCBI//NCBI BlastOutput/EN" "http://www.ncbi.nlm.nih.gov/dtd/NCBI_BlastOutput.dtd">
<BlastOutput>
  <BlastOutput_program>blastn</BlastOutput_program>
  <BlastOutput_db>nr</BlastOutput_db>
  <BlastOutput_query-ID>Query_1</BlastOutput_query-ID>
  <BlastOutput_query-len>4</BlastOutput_query-len>
  <BlastOutput_iterations>
    <Iteration>
      <Iteration_iter-num>1</Iteration_iter-num>
      <Iteration_hits>
        <Hit>
          <Hit_num>1</Hit_num>
          <Hit_id>gi|1|gb|AB000001.1|</Hit_id>
          <Hit_def>Hit A</Hit_def>
          <Hit_accession>AB000001</Hit_accession>
          <Hit_len>1200</Hit_len>
          <Hit_hsps>
            <Hsp>
              <Hsp_num>1</Hsp_num>
              <Hsp_bit-score>8.2</Hsp_bit-score>
              <Hsp_score>4</Hsp_score>
              <Hsp_evalue>0.01</Hsp_evalue>
              <Hsp_identity>2</Hsp_identity>
              <Hsp_align-len>4</Hsp_align-len>
            </Hsp>
            <Hsp>
              <Hsp_num>2</Hsp_num>
              <Hsp_bit-score>9.1</Hsp_bit-score>
              <Hsp_score>5</Hsp_score>
              <Hsp_evalue>1.5e-3</Hsp_evalue>
              <Hsp_identity>3</Hsp_identity>
              <Hsp_align-len>4</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
        <Hit>
          <Hit_num>2</Hit_num>
          <Hit_id>gi|2|gb|AB000002.1|</Hit_id>
          <Hit_def>Hit B &amp; friends</Hit_def>
          <Hit_accession>AB000002</Hit_accession>
          <Hit_len>800</Hit_len>
          <Hit_hsps>
            <Hsp>
              <Hsp_num>1</Hsp_num>
              <Hsp_bit-score>7.0</Hsp_bit-score>
              <Hsp_score>3</Hsp_score>
              <Hsp_evalue>2.5</Hsp_evalue>
              <Hsp_identity>1</Hsp_identity>
              <Hsp_align-len>4</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
      </Iteration_hits>
      <Iteration_stat>
        <Statistics>
          <Statistics_db-num>1000</Statistics_db-num>
          <Statistics_db-len>5000000</Statistics_db-len>
          <Statistics_eff-space>0</Statistics_eff-space>
        </Statistics>
      </Iteration_stat>
    </Iteration>
  </BlastOutput_iterations>
</BlastOutput>`

const noHitsXML = `<?xml version="1.0"?>
<BlastOutput>
  <BlastOutput_db>refseq_rna</BlastOutput_db>
  <BlastOutput_query-len>10</BlastOutput_query-len>
  <BlastOutput_iterations>
    <Iteration>
      <Iteration_iter-num>1</Iteration_iter-num>
      <Iteration_stat>
        <Statistics>
          <Statistics_db-len>42</Statistics_db-len>
        </Statistics>
      </Iteration_stat>
      <Iteration_message>No hits found</Iteration_message>
    </Iteration>
  </BlastOutput_iterations>
</BlastOutput>`
